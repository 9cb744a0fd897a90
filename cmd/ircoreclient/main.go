/*
Command ircoreclient is a minimal wiring example: it loads a
config.Config, connects a client.Client through the transport it
describes, starts a track.Tracker, and drives read_step in a loop
until interrupted. It is not a bot framework or command router — it
has no plugin system and no scripting layer — just enough to prove
the pieces fit together the way a real caller would use them.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log15 "gopkg.in/inconshreveable/log15.v2"

	"github.com/kestrelirc/ircore/client"
	"github.com/kestrelirc/ircore/config"
	"github.com/kestrelirc/ircore/track"
)

func main() {
	configFile := flag.String("config", "ircoreclient.toml", "path to a TOML config file")
	joinChannel := flag.String("join", "", "channel to join once connected (optional)")
	flag.Parse()

	log := log15.New()
	log.SetHandler(log15.StreamHandler(os.Stdout, log15.TerminalFormat()))

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Crit("failed to load config", "file", *configFile, "err", err)
		os.Exit(1)
	}
	if !cfg.Validate() {
		for _, e := range cfg.Errors() {
			log.Crit("invalid config", "err", e)
		}
		os.Exit(1)
	}

	tr, err := cfg.NewTransport()
	if err != nil {
		log.Crit("failed to build transport", "err", err)
		os.Exit(1)
	}

	c := client.New(tr, cfg.Identity())
	c.Log = log

	tracker := track.New(c)

	c.OnConnect(func() {
		log.Info("connected", "nick", c.Self())
		tracker.Start()
		if len(*joinChannel) > 0 {
			c.Join(*joinChannel, "")
		}
	})
	c.OnMessage(func(sender, target, text string) {
		log.Info("message", "from", sender, "to", target, "text", text)
	})
	c.OnNickInUse(func(tried string) (string, bool) {
		return tried + "_", true
	})
	c.OnProtocolError(func(err error) {
		log.Warn("protocol parse error", "err", err)
	})

	if err := c.Connect(cfg.Address); err != nil {
		log.Crit("connect failed", "err", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	lastActivity := time.Now()
	keepalive := time.Duration(cfg.KeepAlive * float64(time.Second))
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for c.Connected() {
		select {
		case <-sigCh:
			c.Quit("client shutting down")
		case <-ticker.C:
			if err := c.ReadStep(); err != nil {
				log.Error("read_step failed", "err", err)
				continue
			}
			if time.Since(lastActivity) >= keepalive {
				if err := c.IdlePing(lastActivity, keepalive); err != nil {
					log.Warn("keepalive ping failed", "err", err)
				}
				lastActivity = time.Now()
			}
		}
	}

	fmt.Println("disconnected")
}
