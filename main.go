package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/strive/forwardlist/cache_strategies"
	"github.com/strive/forwardlist/concurrency"
	"go.uber.org/zap"
)

var (
	// 全局参数
	configPath string
	verbose    bool

	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "scenario",
	Short:        "单向链表及其应用场景演示",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return err
		}
		logger, err = NewLogger(cfg.Log, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var demoCmd = &cobra.Command{
	Use:       "demo [list|hashmap|fifo|queue|pool|all]",
	Short:     "运行演示场景",
	ValidArgs: []string{"list", "hashmap", "fifo", "queue", "pool", "all"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		which := "all"
		if len(args) > 0 {
			which = args[0]
		}
		return runDemo(cmd.Context(), cmd.OutOrStdout(), logger, cfg, which)
	},
}

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "对整数链表执行YAML操作脚本",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadScript(args[0])
		if err != nil {
			return err
		}
		logger.Debug("running script", zap.String("path", args[0]), zap.Int("ops", len(s.Ops)))
		l, err := RunScript(cmd.OutOrStdout(), s)
		if err != nil {
			return err
		}
		logger.Info("script finished", zap.Int("len", l.Len()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出Debug日志")
	rootCmd.AddCommand(demoCmd, scriptCmd)
}

// runDemo 运行指定的演示场景
func runDemo(ctx context.Context, w io.Writer, logger *zap.Logger, cfg Config, which string) error {
	run := func(name string) bool { return which == "all" || which == name }

	if run("list") {
		fmt.Fprintln(w, "\n--- 单向链表 ---")
		ForwardListDemo(w, logger)
	}
	if run("hashmap") {
		fmt.Fprintln(w, "\n--- 哈希表 ---")
		HashMapDemo(w, logger)
	}
	if run("fifo") {
		fmt.Fprintln(w, "\n--- FIFO缓存 ---")
		cache_strategies.FIFOCacheDemo(w, logger, cfg.FIFO.Capacity)
	}
	if run("queue") {
		fmt.Fprintln(w, "\n--- 生产者-消费者队列 ---")
		_, err := concurrency.ProducerConsumerDemo(ctx, w, logger, concurrency.DemoConfig{
			Capacity:  cfg.Queue.Capacity,
			Producers: cfg.Queue.Producers,
			Consumers: cfg.Queue.Consumers,
			Items:     cfg.Queue.Items,
			Delay:     cfg.Queue.Delay,
		})
		if err != nil {
			return errors.Wrap(err, "producer/consumer demo")
		}
	}
	if run("pool") {
		fmt.Fprintln(w, "\n--- 协程池 ---")
		if _, err := concurrency.GoroutinePoolDemo(ctx, w, logger, cfg.Pool.Workers, cfg.Pool.QueueSize, cfg.Pool.Requests); err != nil {
			return errors.Wrap(err, "goroutine pool demo")
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
