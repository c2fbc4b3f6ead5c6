// fbw-host — хост вычислителей управления полётом: законы тангажа (Normal и
// Alternate), два FAC и пределы тяги в одном цикле кадров.
//
// Использование:
//
//	fbw-host -list-ports                  — показать последовательные порты и выйти
//	fbw-host -once -config fbw-host.yml   — прогнать секунду кадров на стоянке и вывести шину в JSON
//	fbw-host -run -config fbw-host.yml    — запуск цикла кадров до SIGINT/SIGTERM
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/config"
	"github.com/flybywiresim/aircraft-sub011/internal/logger"
	"github.com/flybywiresim/aircraft-sub011/pkg/fbwhost"
)

func main() {
	run := flag.Bool("run", false, "запуск цикла кадров")
	once := flag.Bool("once", false, "прогнать секунду кадров на стоянке и вывести шину в JSON")
	listPorts := flag.Bool("list-ports", false, "показать последовательные порты и выйти")
	configPath := flag.String("config", "", "путь к YAML конфигу (по умолчанию fbw-host.yml)")
	variant := flag.String("variant", "", "вариант самолёта a320/a380 (переопределяет config)")
	busKind := flag.String("bus", "", "шина memory/serial/simconnect (переопределяет config)")
	port := flag.String("port", "", "порт адаптера ARINC-429 (переопределяет config)")
	quiet := flag.Bool("quiet", false, "меньше вывода")
	flag.Parse()

	if *listPorts {
		runListPorts()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil && *configPath != "" {
		log.Fatalf("config: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if *variant != "" {
		cfg.Aircraft.Variant = *variant
	}
	if *busKind != "" {
		cfg.Bus.Kind = *busKind
	}
	if *port != "" {
		cfg.Bus.Port = *port
	}
	if err := cfg.Normalize(); err != nil {
		log.Fatalf("config: %v", err)
	}

	switch {
	case *once:
		runOnce(cfg)
	case *run:
		logger.Quiet = *quiet
		runDaemonWithShutdown(cfg, *quiet)
	default:
		runOnce(cfg)
		if !*quiet {
			fmt.Fprintln(os.Stderr, "fbw-host: для цикла кадров используйте -run")
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "fbw-host.yml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return config.Load(path)
}

func runListPorts() {
	ports, err := arinc.ListPorts()
	if err != nil {
		log.Fatalf("список портов: %v", err)
	}
	for _, p := range ports {
		fmt.Println(p)
	}
}

func runOnce(cfg *config.Config) {
	frames := int(cfg.Frame.RateHz)
	snap, err := fbwhost.RunOnce(fbwhost.ToPkgConfig(cfg), frames)
	if err != nil {
		log.Fatalf("once: %v", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatalf("once: %v", err)
	}
}

// runDaemonWithShutdown запускает цикл кадров через fbwhost.RunDaemon;
// по SIGINT/SIGTERM контекст отменяется, шина и регистратор закрываются.
func runDaemonWithShutdown(cfg *config.Config, quiet bool) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("получен сигнал %v, завершение...", sig)
		cancel()
	}()

	if err := fbwhost.RunDaemon(ctx, fbwhost.ToPkgConfig(cfg), quiet); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
