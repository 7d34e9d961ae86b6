package main

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config 演示程序的配置，对应 --config 指定的YAML文件
type Config struct {
	Log   LogConfig   `yaml:"log"`
	FIFO  FIFOConfig  `yaml:"fifo"`
	Queue QueueConfig `yaml:"queue"`
	Pool  PoolConfig  `yaml:"pool"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
}

// FIFOConfig FIFO缓存演示配置
type FIFOConfig struct {
	Capacity int `yaml:"capacity"`
}

// QueueConfig 生产者-消费者演示配置
type QueueConfig struct {
	Capacity  int           `yaml:"capacity"`
	Producers int           `yaml:"producers"`
	Consumers int           `yaml:"consumers"`
	Items     int           `yaml:"items"`
	Delay     time.Duration `yaml:"delay"`
}

// PoolConfig 协程池演示配置
type PoolConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
	Requests  int `yaml:"requests"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		FIFO: FIFOConfig{Capacity: 3},
		Queue: QueueConfig{
			Capacity:  5,
			Producers: 3,
			Consumers: 2,
			Items:     10,
			Delay:     10 * time.Millisecond,
		},
		Pool: PoolConfig{
			Workers:   5,
			QueueSize: 20,
			Requests:  50,
		},
	}
}

// LoadConfig 读取YAML配置，文件中未出现的键保留默认值。path为空时返回默认配置。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate 检查配置项的取值范围
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if c.FIFO.Capacity < 1 {
		return errors.Newf("fifo.capacity must be positive, got %d", c.FIFO.Capacity)
	}
	q := c.Queue
	if q.Capacity < 1 || q.Producers < 1 || q.Consumers < 1 {
		return errors.Newf("queue.capacity, queue.producers and queue.consumers must be positive, got %d/%d/%d",
			q.Capacity, q.Producers, q.Consumers)
	}
	if q.Items < 0 || q.Delay < 0 {
		return errors.New("queue.items and queue.delay must not be negative")
	}
	p := c.Pool
	if p.Workers < 1 || p.QueueSize < 1 || p.Requests < 0 {
		return errors.Newf("pool.workers and pool.queue_size must be positive and pool.requests not negative, got %d/%d/%d",
			p.Workers, p.QueueSize, p.Requests)
	}
	return nil
}

// NewLogger 按配置构建zap日志，verbose为true时使用Debug级别
func NewLogger(c LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log.level")
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}
