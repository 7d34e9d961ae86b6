package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("testdata/config.yaml")
	require.NoError(t, err)
	require.Equal(t, Config{
		Log:  LogConfig{Level: "debug"},
		FIFO: FIFOConfig{Capacity: 2},
		Queue: QueueConfig{
			Capacity:  4,
			Producers: 2,
			Consumers: 3,
			Items:     6,
			Delay:     time.Millisecond,
		},
		Pool: PoolConfig{Workers: 2, QueueSize: 3, Requests: 10},
	}, cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fifo:\n  capacity: 7\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	want := DefaultConfig()
	want.FIFO.Capacity = 7
	require.Equal(t, want, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad level":     "log:\n  level: loud\n",
		"zero capacity": "fifo:\n  capacity: 0\n",
		"no consumers":  "queue:\n  consumers: 0\n",
		"negative":      "queue:\n  items: -1\n",
		"no workers":    "pool:\n  workers: 0\n",
		"not yaml":      "fifo: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadConfig(path)
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "warn"}, false)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zap.InfoLevel))

	logger, err = NewLogger(LogConfig{Level: "warn"}, true)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger(LogConfig{Level: "nope"}, false)
	require.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Queue.Delay = 0

	var buf bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &buf, zap.NewNop(), cfg, "all"))
	out := buf.String()
	require.Contains(t, out, "初始链表: [1 2 3]")
	require.Contains(t, out, "在第一个元素后插入99: [1 99 2 3]")
	require.Contains(t, out, "头部添加0: [0 1 2 3] (长度 4)")
	require.Contains(t, out, "前置位置插入-1并在尾部追加4: [-1 0 1 2 3 4]")
	require.Contains(t, out, "拷贝并移除头部: 原链表 [-1 0 1 2 3 4], 拷贝 [0 1 2 3 4]")
	require.Contains(t, out, "原链表 == 拷贝: false, 原链表 < 拷贝: true")
	require.Contains(t, out, "删除'email'后是否还存在: false")
	require.Contains(t, out, "数据不存在: api/users (已被淘汰)")
	require.Contains(t, out, "总出队数: 30")
	require.Contains(t, out, "提交任务总数: 50")

	buf.Reset()
	require.NoError(t, runDemo(context.Background(), &buf, zap.NewNop(), cfg, "list"))
	require.NotContains(t, buf.String(), "FIFO")
	require.NotContains(t, buf.String(), "哈希表")
}
