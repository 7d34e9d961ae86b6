package cache_strategies

/*
FIFO（First In First Out）缓存替换算法

原理：
FIFO是最简单的缓存替换算法，基于"先进先出"原则淘汰数据。
最先进入缓存的数据在缓存满时会被优先淘汰，不考虑数据的访问频率和时间。

关键特点：
1. 维护一个队列，新数据从队尾加入，淘汰时从队头移除
2. 淘汰策略仅基于数据入队顺序，与访问模式无关
3. 实现简单，开销小

实现方式：
- 使用单向链表 + 哈希表的组合结构
- 单向链表维护数据的先后顺序：保存队尾迭代器，入队为InsertAfter(队尾)，淘汰为PopFront，均为O(1)
- 哈希表提供O(1)的快速查找
- 手动删除需要从前置位置向后扫描找到前驱，为O(n)

以下实现了一个基本的FIFO缓存，支持Get、Put和Remove操作。
*/

import (
	"fmt"
	"io"

	"github.com/strive/forwardlist/forwardlist"
	"go.uber.org/zap"
)

// fifoEntry FIFO缓存节点结构
type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// FIFOCache FIFO缓存结构
type FIFOCache[K comparable, V any] struct {
	capacity int                                    // 最大容量
	queue    forwardlist.List[*fifoEntry[K, V]]     // 队列：维护先进先出顺序
	tail     forwardlist.Iterator[*fifoEntry[K, V]] // 队尾位置，队列为空时为前置位置
	cache    map[K]*fifoEntry[K, V]                 // 哈希表：键 -> 队列节点
}

// NewFIFOCache 创建指定容量的FIFO缓存，容量小于1时按1处理
func NewFIFOCache[K comparable, V any](capacity int) *FIFOCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &FIFOCache[K, V]{
		capacity: capacity,
		cache:    make(map[K]*fifoEntry[K, V]),
	}
	c.tail = c.queue.BeforeBegin()
	return c
}

// Get 获取缓存中的值，不存在返回零值和false
func (c *FIFOCache[K, V]) Get(key K) (V, bool) {
	// 返回节点值，但不改变位置（与LRU不同）
	if e, exists := c.cache[key]; exists {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put 插入或更新缓存中的键值对，返回被淘汰的键（如果有）
func (c *FIFOCache[K, V]) Put(key K, value V) (evicted K, ok bool) {
	// 如果键已存在，只更新值，不改变位置
	if e, exists := c.cache[key]; exists {
		e.value = value
		return evicted, false
	}

	// 如果达到容量上限，从队列头部删除最早的元素
	if c.queue.Len() >= c.capacity {
		oldest := c.queue.PopFront()
		delete(c.cache, oldest.key)
		if c.queue.Empty() {
			c.tail = c.queue.BeforeBegin()
		}
		evicted, ok = oldest.key, true
	}

	// 创建新节点并添加到队列尾部
	e := &fifoEntry[K, V]{key: key, value: value}
	c.tail = c.queue.InsertAfter(c.tail, e)
	c.cache[key] = e
	return evicted, ok
}

// Remove 从缓存中删除指定键
func (c *FIFOCache[K, V]) Remove(key K) bool {
	e, exists := c.cache[key]
	if !exists {
		return false
	}
	prev := c.queue.BeforeBegin()
	for it := prev.Next(); it != c.queue.End(); prev, it = it, it.Next() {
		if it.Value() != e {
			continue
		}
		if it == c.tail {
			c.tail = prev
		}
		c.queue.EraseAfter(prev)
		break
	}
	delete(c.cache, key)
	return true
}

// Size 返回当前缓存中的元素数量
func (c *FIFOCache[K, V]) Size() int {
	return c.queue.Len()
}

// Capacity 返回缓存容量
func (c *FIFOCache[K, V]) Capacity() int {
	return c.capacity
}

// Clear 清空缓存
func (c *FIFOCache[K, V]) Clear() {
	c.queue.Clear()
	c.tail = c.queue.BeforeBegin()
	c.cache = make(map[K]*fifoEntry[K, V])
}

// Keys 返回缓存中所有键的列表（按FIFO顺序）
func (c *FIFOCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.queue.Len())
	for e := range c.queue.All() {
		keys = append(keys, e.key)
	}
	return keys
}

// FIFOCacheDemo 场景示例：网络请求缓存
func FIFOCacheDemo(w io.Writer, logger *zap.Logger, capacity int) {
	cache := NewFIFOCache[string, string](capacity)

	fmt.Fprintf(w, "网络请求缓存示例 (FIFO缓存容量=%d):\n", cache.Capacity())

	put := func(key, value string) {
		if evicted, ok := cache.Put(key, value); ok {
			logger.Debug("fifo cache evicted entry", zap.String("key", evicted), zap.String("by", key))
		}
	}

	// 模拟API请求响应缓存
	put("api/users", "用户列表数据")
	put("api/products", "产品列表数据")
	put("api/orders", "订单列表数据")

	fmt.Fprintln(w, "\n=== 初始缓存状态 ===")
	printFIFOStatus(w, cache)

	// 重复获取已存在的数据（不影响其在FIFO中的位置）
	if data, found := cache.Get("api/users"); found {
		fmt.Fprintf(w, "获取数据: api/users = %v\n", data)
	}

	// 添加新数据，容量已满时会淘汰最早进入的数据
	put("api/settings", "系统设置数据")

	fmt.Fprintln(w, "\n=== 添加新数据后 ===")
	printFIFOStatus(w, cache)

	if data, found := cache.Get("api/users"); found {
		fmt.Fprintf(w, "获取数据: api/users = %v\n", data)
	} else {
		fmt.Fprintln(w, "数据不存在: api/users (已被淘汰)")
	}

	// 测试手动删除
	cache.Remove("api/products")

	fmt.Fprintln(w, "\n=== 删除数据后 ===")
	printFIFOStatus(w, cache)

	logger.Info("fifo cache demo finished", zap.Int("size", cache.Size()), zap.Strings("keys", cache.Keys()))
}

// 辅助函数：打印FIFO缓存状态
func printFIFOStatus(w io.Writer, cache *FIFOCache[string, string]) {
	fmt.Fprintln(w, "FIFO队列顺序（从先到后）:")
	for i, key := range cache.Keys() {
		value, _ := cache.Get(key)
		fmt.Fprintf(w, "%d. 键: %s, 值: %v\n", i+1, key, value)
	}
}
