package main

import (
	"fmt"
	"io"

	"github.com/strive/forwardlist/forwardlist"
	"go.uber.org/zap"
)

// ForwardListDemo 演示单向链表的使用
func ForwardListDemo(w io.Writer, logger *zap.Logger) {
	// 按给定顺序构建
	l := forwardlist.Of(1, 2, 3)
	fmt.Fprintf(w, "初始链表: %v\n", l)

	// 在第一个元素之后插入和删除
	l.InsertAfter(l.Begin(), 99)
	fmt.Fprintf(w, "在第一个元素后插入99: %v\n", l)
	l.EraseAfter(l.Begin())
	fmt.Fprintf(w, "删除第一个元素后的节点: %v\n", l)

	// 在头部添加
	l.PushFront(0)
	fmt.Fprintf(w, "头部添加0: %v (长度 %d)\n", l, l.Len())

	// 通过前置位置在头部插入，再通过迭代器追加到尾部
	l.InsertAfter(l.BeforeBegin(), -1)
	tail := l.BeforeBegin()
	for it := l.Begin(); it != l.End(); it = it.Next() {
		tail = it
	}
	l.InsertAfter(tail, 4)
	fmt.Fprintf(w, "前置位置插入-1并在尾部追加4: %v\n", l)

	// 深拷贝互不影响
	c := l.Clone()
	c.PopFront()
	fmt.Fprintf(w, "拷贝并移除头部: 原链表 %v, 拷贝 %v\n", l, c)

	// 字典序比较
	fmt.Fprintf(w, "原链表 == 拷贝: %v, 原链表 < 拷贝: %v\n",
		forwardlist.Equal(l, c), forwardlist.Less(l, c))

	// 交换内容
	l.Swap(c)
	fmt.Fprintf(w, "交换后: 原链表 %v, 拷贝 %v\n", l, c)

	// 清空
	l.Clear()
	fmt.Fprintf(w, "清空后: %v, 是否为空: %v\n", l, l.Empty())

	logger.Info("forward list demo finished", zap.Int("clone_len", c.Len()))
}
