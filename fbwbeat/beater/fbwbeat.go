// Package beater реализует интерфейс Beater для Fbwbeat (libbeat v7).
package beater

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/beats/v7/libbeat/beat"
	"github.com/elastic/beats/v7/libbeat/common"
	"github.com/elastic/beats/v7/libbeat/logp"

	pkgconfig "github.com/flybywiresim/aircraft-sub011/pkg/config"
	"github.com/flybywiresim/aircraft-sub011/pkg/fbwhost"
)

// Fbwbeat реализует beat.Beater.
type Fbwbeat struct {
	done   chan struct{}
	config *pkgconfig.Config
	client beat.Client
}

// New создаёт Beater из секции fbwbeat конфигурации Beat.
func New(b *beat.Beat, cfg *common.Config) (beat.Beater, error) {
	sub, err := cfg.Child("fbwbeat", -1)
	if err != nil || sub == nil {
		return nil, fmt.Errorf("конфиг fbwbeat не найден: %v", err)
	}
	config := defaultConfig()
	if err := sub.Unpack(&config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфига fbwbeat: %w", err)
	}
	return &Fbwbeat{
		done:   make(chan struct{}),
		config: &config,
	}, nil
}

// Run запускает цикл кадров до Stop(). Начало и конец работы хоста
// публикуются событиями.
func (bt *Fbwbeat) Run(b *beat.Beat) error {
	logp.Info("fbwbeat запущен (variant=%s, bus=%s)", bt.config.Aircraft.Variant, bt.config.Bus.Kind)
	client, err := b.Publisher.Connect()
	if err != nil {
		return fmt.Errorf("publisher connect: %w", err)
	}
	bt.client = client
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-bt.done
		cancel()
	}()

	bt.publish("running", nil)
	err = fbwhost.RunDaemon(ctx, bt.config, true)
	if err != nil && !errors.Is(err, context.Canceled) {
		logp.Warnf("fbw-host завершён: %v", err)
		bt.publish("failed", err)
		return nil
	}
	bt.publish("stopped", nil)
	return nil
}

func (bt *Fbwbeat) publish(state string, err error) {
	fields := common.MapStr{
		"fbwhost": common.MapStr{
			"state":   state,
			"variant": bt.config.Aircraft.Variant,
			"bus":     bt.config.Bus.Kind,
		},
	}
	if err != nil {
		fields.Put("fbwhost.error", err.Error())
	}
	bt.client.Publish(beat.Event{Timestamp: time.Now(), Fields: fields})
}

// Stop останавливает Run; клиент закрывает сам Run после последнего события.
func (bt *Fbwbeat) Stop() {
	close(bt.done)
}

func defaultConfig() pkgconfig.Config {
	return pkgconfig.Config{
		Aircraft: pkgconfig.AircraftConfig{Variant: "a320"},
		Frame:    pkgconfig.FrameConfig{RateHz: 30, MaxDt: "100ms"},
		Bus:      pkgconfig.BusConfig{Kind: "memory"},
		Log:      pkgconfig.LogConfig{Level: "info"},
	}
}
