package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"waqt/internal/config"
	"waqt/internal/engine"
	appLog "waqt/internal/log"
	"waqt/internal/trigger"
)

type flagConfig struct {
	configPath string
	once       bool
	context    bool
}

func main() {
	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	appLog.SetLevel(appLog.Level(conf.LogLevel))

	appLog.Info("waqtd starting",
		"country", conf.Country,
		"weekend", fmt.Sprint(conf.WeekendDays),
		"data_dir", conf.DataDir,
		"trigger_cron", conf.TriggerCron,
		"once", flags.once,
	)

	eng, err := engine.New(conf)
	if err != nil {
		appLog.Error("failed to build engine", err)
		os.Exit(1)
	}

	// The notification layer is external; until one is attached, fired
	// triggers are rendered as log lines.
	eng.Triggers.RegisterHandler("notify", func(t trigger.Trigger) error {
		payload, _ := json.Marshal(t.Data)
		appLog.Info("trigger notification", "id", t.ID, "payload", string(payload))
		return nil
	})

	if flags.context {
		snapshot, _ := json.MarshalIndent(eng.ContextNow(), "", "  ")
		fmt.Println(string(snapshot))
		return
	}

	if flags.once {
		fired := eng.CheckTriggers()
		appLog.Info("trigger check completed", "fired", fired)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	c := cron.New()
	if _, err := c.AddFunc(conf.TriggerCron, func() {
		fired := eng.CheckTriggers()
		if fired > 0 {
			appLog.Info("trigger check completed", "fired", fired)
		}
	}); err != nil {
		appLog.Error("invalid trigger cron expression", err, "cron", conf.TriggerCron)
		os.Exit(1)
	}
	c.Start()
	defer c.Stop()

	<-ctx.Done()
	time.Sleep(100 * time.Millisecond)
	appLog.Info("waqtd exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "/etc/waqt/config.yaml", "Path to config file")
	flag.BoolVar(&cfg.once, "once", false, "Run one trigger check and exit")
	flag.BoolVar(&cfg.context, "context", false, "Print the current time context and exit")

	flag.Parse()

	return cfg
}
