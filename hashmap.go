package main

/*
哈希表（拉链法）

原理：
每个桶是一条单向链表（forwardlist.List），键经哈希后落入某个桶，
冲突的键依次挂在同一条链上。

- Put：扫描链表，找到键则原地更新，否则追加到链尾（记住最后一个位置后InsertAfter）
- Remove：从前置位置开始扫描，命中后对前驱调用EraseAfter，链头链中链尾处理方式相同
- 扩容：元素数/桶数超过负载因子时桶数翻倍，逐个PopFront旧链表并放入新桶
*/

import (
	"fmt"
	"hash/maphash"
	"io"

	"github.com/strive/forwardlist/forwardlist"
	"go.uber.org/zap"
)

const (
	hashMapInitialBuckets = 16   // 初始桶数
	hashMapLoadFactor     = 0.75 // 负载因子
)

// hashEntry 桶中存放的键值对
type hashEntry[K comparable, V any] struct {
	key   K
	value V
}

// HashMap 以单向链表为桶的哈希表
type HashMap[K comparable, V any] struct {
	buckets []forwardlist.List[hashEntry[K, V]]
	size    int
	hash    func(K) uint64
}

// NewHashMap 创建新的哈希表
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	seed := maphash.MakeSeed()
	return newHashMapWithHasher[K, V](func(k K) uint64 {
		return maphash.Comparable(seed, k)
	})
}

func newHashMapWithHasher[K comparable, V any](hash func(K) uint64) *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets: make([]forwardlist.List[hashEntry[K, V]], hashMapInitialBuckets),
		hash:    hash,
	}
}

// bucket 返回键所在的桶
func (h *HashMap[K, V]) bucket(key K) *forwardlist.List[hashEntry[K, V]] {
	return &h.buckets[h.hash(key)%uint64(len(h.buckets))]
}

// Put 插入键值对，键已存在时只更新值
func (h *HashMap[K, V]) Put(key K, value V) {
	b := h.bucket(key)

	last := b.BeforeBegin()
	for it := b.Begin(); it != b.End(); last, it = it, it.Next() {
		if it.Value().key == key {
			it.Set(hashEntry[K, V]{key: key, value: value})
			return
		}
	}

	// 添加到链表末尾
	b.InsertAfter(last, hashEntry[K, V]{key: key, value: value})
	h.size++

	if float64(h.size)/float64(len(h.buckets)) > hashMapLoadFactor {
		h.resize()
	}
}

// Get 获取键对应的值
func (h *HashMap[K, V]) Get(key K) (V, bool) {
	for e := range h.bucket(key).All() {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove 删除键值对，键不存在时返回false
func (h *HashMap[K, V]) Remove(key K) bool {
	b := h.bucket(key)
	prev := b.BeforeBegin()
	for it := b.Begin(); it != b.End(); prev, it = it, it.Next() {
		if it.Value().key == key {
			b.EraseAfter(prev)
			h.size--
			return true
		}
	}
	return false
}

// Contains 检查哈希表中是否存在指定的键
func (h *HashMap[K, V]) Contains(key K) bool {
	_, exists := h.Get(key)
	return exists
}

// Size 返回哈希表中键值对的数量
func (h *HashMap[K, V]) Size() int {
	return h.size
}

// resize 桶数翻倍并重新分配所有元素，元素数量不变
func (h *HashMap[K, V]) resize() {
	old := h.buckets
	h.buckets = make([]forwardlist.List[hashEntry[K, V]], 2*len(old))
	for i := range old {
		for !old[i].Empty() {
			e := old[i].PopFront()
			h.bucket(e.key).PushFront(e)
		}
	}
}

// HashMapDemo 演示哈希表的使用
func HashMapDemo(w io.Writer, logger *zap.Logger) {
	hashMap := NewHashMap[string, any]()

	hashMap.Put("name", "张三")
	hashMap.Put("age", 25)
	hashMap.Put("email", "zhangsan@example.com")

	if name, exists := hashMap.Get("name"); exists {
		fmt.Fprintf(w, "姓名: %v\n", name)
	}
	if age, exists := hashMap.Get("age"); exists {
		fmt.Fprintf(w, "年龄: %v\n", age)
	}

	fmt.Fprintf(w, "是否包含'email'键: %v\n", hashMap.Contains("email"))
	fmt.Fprintf(w, "是否包含'phone'键: %v\n", hashMap.Contains("phone"))
	fmt.Fprintf(w, "哈希映射大小: %d\n", hashMap.Size())

	hashMap.Remove("email")
	fmt.Fprintf(w, "删除'email'后是否还存在: %v\n", hashMap.Contains("email"))
	fmt.Fprintf(w, "删除后哈希映射大小: %d\n", hashMap.Size())

	// 插入足够多的键触发扩容
	for i := 0; i < 20; i++ {
		hashMap.Put(fmt.Sprintf("key-%d", i), i)
	}
	fmt.Fprintf(w, "扩容后桶数: %d, 大小: %d\n", len(hashMap.buckets), hashMap.Size())

	logger.Info("hash map demo finished",
		zap.Int("size", hashMap.Size()),
		zap.Int("buckets", len(hashMap.buckets)))
}
