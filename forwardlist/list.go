package forwardlist

/*
单向链表（forward list）

该实现不依赖标准库的container/list包，而是从零开始实现了一个泛型单向链表。
链表结构：
- 链表结构体自身持有头链接（head），它就是"前置位置"（before-begin），不存储任何值
- 每个节点独占指向下一个节点的链接，每个节点只被一个链接引用
- 缓存元素个数，Len/Empty为O(1)

提供的操作：
- 在头部添加/移除节点 PushFront/PopFront，O(1)
- 在指定位置之后插入/删除节点 InsertAfter/EraseAfter，O(1)，无需从头扫描
- 深拷贝 Clone、拷贝赋值 Assign、交换 Swap
- 按字典序比较（见compare.go）

调用方契约（对空链表PopFront、解引用End、使用已删除位置的迭代器等）
不通过error返回，使用 invariants 构建标签编译时会触发断言。
*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// node 单向链表节点
type node[T any] struct {
	value T        // 节点值
	next  *node[T] // 下一个节点指针，由当前节点独占
}

// List 单向链表，零值即为可用的空链表
type List[T any] struct {
	head *node[T] // 前置位置持有的链接，指向第一个节点
	len  int      // 链表长度（不包括前置位置）
}

// New 创建新的空链表
func New[T any]() *List[T] {
	return new(List[T])
}

// Of 按参数顺序创建链表，遍历结果与参数顺序一致
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice 按切片顺序创建链表
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	tail := l.BeforeBegin()
	for _, v := range values {
		tail = l.InsertAfter(tail, v)
	}
	return l
}

// FromSeq 按序列顺序创建链表
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	tail := l.BeforeBegin()
	for v := range seq {
		tail = l.InsertAfter(tail, v)
	}
	return l
}

// Clone 返回链表的深拷贝，新链表与原链表不共享任何节点。
// 节点链先在局部构建完成，再一次性交给新链表，原链表不会被修改。
func (l *List[T]) Clone() *List[T] {
	var head *node[T]
	link := &head
	for n := l.head; n != nil; n = n.next {
		*link = &node[T]{value: n.value}
		link = &(*link).next
	}
	c := &List[T]{head: head, len: l.len}
	if invariantsEnabled {
		if err := c.verify(); err != nil {
			panic(err)
		}
	}
	return c
}

// Assign 将other的内容拷贝到链表中（先拷贝再交换）。
// 自赋值时不做任何操作。
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	c := other.Clone()
	l.Swap(c)
	// c 现在持有原来的节点
	c.Clear()
}

// Swap 交换两个链表的全部内容，O(1)，不复制任何节点。
// 指向节点的迭代器随节点转到另一个链表；前置位置迭代器仍属于原链表结构体。
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.len, other.len = other.len, l.len
}

// Swap 交换两个链表的内容
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Len 返回链表长度
func (l *List[T]) Len() int {
	return l.len
}

// Empty 链表是否为空
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Front 返回第一个节点的值，链表不能为空
func (l *List[T]) Front() T {
	if invariantsEnabled && l.head == nil {
		panic(errors.AssertionFailedf("Front called on empty list"))
	}
	return l.head.value
}

// PushFront 在链表头部添加节点
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.len++
}

// PopFront 移除链表第一个节点并返回其值，链表不能为空
func (l *List[T]) PopFront() T {
	if invariantsEnabled && l.head == nil {
		panic(errors.AssertionFailedf("PopFront called on empty list"))
	}
	n := l.head
	l.head = n.next
	v := n.value
	*n = node[T]{} // 避免内存泄漏
	l.len--
	return v
}

// Clear 逐个释放所有节点，对空链表调用也是安全的
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		*n = node[T]{}
		n = next
	}
	l.head = nil
	l.len = 0
}

// BeforeBegin 返回前置位置的迭代器。
// 可作为InsertAfter/EraseAfter的位置参数，但不能解引用。
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{link: &l.head}
}

// Begin 返回指向第一个节点的迭代器，链表为空时等于End
func (l *List[T]) Begin() Iterator[T] {
	return at(l.head)
}

// End 返回尾后位置的迭代器，只用作遍历边界
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// InsertAfter 在pos之后插入值为v的节点，返回指向新节点的迭代器。
// pos必须是本链表中仍然有效的位置（前置位置或某个节点）。
func (l *List[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	if invariantsEnabled {
		l.assertOwns(pos, "InsertAfter")
	}
	n := &node[T]{value: v, next: *pos.link}
	*pos.link = n
	l.len++
	return at(n)
}

// EraseAfter 删除pos之后的节点，返回指向pos新后继的迭代器（可能是End）。
// pos之后必须存在节点。
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if invariantsEnabled {
		l.assertOwns(pos, "EraseAfter")
		if *pos.link == nil {
			panic(errors.AssertionFailedf("EraseAfter called on a position without successor"))
		}
	}
	victim := *pos.link
	*pos.link = victim.next
	*victim = node[T]{}
	l.len--
	return at(*pos.link)
}

// All 返回按顺序遍历所有值的迭代序列
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values 按顺序返回所有值
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// String 以 [v1 v2 ...] 的形式输出链表
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// assertOwns 检查pos是本链表中可以在其后插入或删除的位置。
// 归属检查耗时O(n)，只在ownershipChecksEnabled时进行。
func (l *List[T]) assertOwns(pos Iterator[T], op string) {
	if pos.link == nil {
		panic(errors.AssertionFailedf("%s called with the end iterator", errors.Safe(op)))
	}
	if !ownershipChecksEnabled || pos.link == &l.head {
		return
	}
	for n := l.head; n != nil; n = n.next {
		if pos.node == n {
			return
		}
	}
	panic(errors.AssertionFailedf("%s called with an iterator that does not belong to this list", errors.Safe(op)))
}

// verify 校验链表结构：节点数等于缓存的长度，且不存在环
func (l *List[T]) verify() error {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
		if count > l.len {
			return errors.AssertionFailedf("found more than %d reachable nodes (cycle or stale length)", l.len)
		}
	}
	if count != l.len {
		return errors.AssertionFailedf("length is %d but %d nodes are reachable", l.len, count)
	}
	return nil
}
