package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/strive/forwardlist/forwardlist"
	"gopkg.in/yaml.v3"
)

// beforeBeginPos 脚本中表示前置位置的pos取值
const beforeBeginPos = -1

// ScriptOp 脚本中的一步操作
//
// pos为-1表示前置位置，N>=0表示从Begin前进N步得到的节点。
type ScriptOp struct {
	Op     string `yaml:"op"`
	Pos    *int   `yaml:"pos"`
	Value  int    `yaml:"value"`
	Values []int  `yaml:"values"`
}

// Script 对 List[int] 依次执行的操作脚本
type Script struct {
	Ops []ScriptOp `yaml:"ops"`
}

// LoadScript 读取YAML操作脚本
func LoadScript(path string) (Script, error) {
	var s Script
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "reading script")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parsing script %s", path)
	}
	return s, nil
}

// RunScript 在一个新链表上依次执行脚本，每一步后输出链表内容。
// 每一步在修改链表前先校验位置，出错时链表保持上一步的状态。
func RunScript(w io.Writer, s Script) (*forwardlist.List[int], error) {
	l := forwardlist.New[int]()
	for i, op := range s.Ops {
		if err := applyOp(l, op); err != nil {
			return l, errors.Wrapf(err, "op %d (%s)", i, op.Op)
		}
		fmt.Fprintf(w, "%-13s %v\n", op.Op, l)
	}
	return l, nil
}

func applyOp(l *forwardlist.List[int], op ScriptOp) error {
	switch op.Op {
	case "build":
		l.Assign(forwardlist.FromSlice(op.Values))
	case "push-front":
		l.PushFront(op.Value)
	case "pop-front":
		if l.Empty() {
			return errors.New("list is empty")
		}
		l.PopFront()
	case "insert-after":
		pos, err := position(l, op.Pos, false /* needSuccessor */)
		if err != nil {
			return err
		}
		l.InsertAfter(pos, op.Value)
	case "erase-after":
		pos, err := position(l, op.Pos, true /* needSuccessor */)
		if err != nil {
			return err
		}
		l.EraseAfter(pos)
	case "clear":
		l.Clear()
	default:
		return errors.Newf("unknown op %q", op.Op)
	}
	return nil
}

// position 将脚本中的pos转换为迭代器
func position(l *forwardlist.List[int], pos *int, needSuccessor bool) (forwardlist.Iterator[int], error) {
	if pos == nil {
		return l.End(), errors.New("missing pos")
	}
	p := *pos
	if p < beforeBeginPos || p >= l.Len() {
		return l.End(), errors.Newf("position %d out of range for list of length %d", p, l.Len())
	}
	if needSuccessor && p+1 >= l.Len() {
		return l.End(), errors.Newf("position %d has no successor in list of length %d", p, l.Len())
	}
	it := l.BeforeBegin()
	for i := beforeBeginPos; i < p; i++ {
		it = it.Next()
	}
	return it, nil
}
