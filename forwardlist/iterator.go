package forwardlist

import "github.com/cockroachdb/errors"

// Iterator 单向链表的前向迭代器，不持有节点。
//
// 迭代器有三种状态：前置位置（BeforeBegin）、指向某个节点、尾后位置（End）。
// 迭代器内部保存的是"该位置持有的后继链接"：前置位置为链表的head字段，
// 节点位置为该节点的next字段。因此InsertAfter/EraseAfter可以直接修改链接，
// 不需要从头扫描寻找前驱。零值Iterator即为End。
//
// 迭代器可以用 == 比较。删除或清空所指向的位置后迭代器失效，
// 其他位置的插入和删除不影响它。
type Iterator[T any] struct {
	node *node[T]  // 当前节点，前置位置和End时为nil
	link **node[T] // 当前位置持有的后继链接，End时为nil
}

// at 返回指向节点n的迭代器，n为nil时返回End
func at[T any](n *node[T]) Iterator[T] {
	if n == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{node: n, link: &n.next}
}

// Next 返回下一个位置的迭代器，不能在End上调用
func (it Iterator[T]) Next() Iterator[T] {
	if invariantsEnabled && it.link == nil {
		panic(errors.AssertionFailedf("advancing past the end iterator"))
	}
	return at(*it.link)
}

// Value 返回当前节点的值，前置位置和End不能解引用
func (it Iterator[T]) Value() T {
	if invariantsEnabled && it.node == nil {
		panic(errors.AssertionFailedf("dereferencing an iterator that does not point at an element"))
	}
	return it.node.value
}

// Set 修改当前节点的值
func (it Iterator[T]) Set(v T) {
	if invariantsEnabled && it.node == nil {
		panic(errors.AssertionFailedf("assigning through an iterator that does not point at an element"))
	}
	it.node.value = v
}
