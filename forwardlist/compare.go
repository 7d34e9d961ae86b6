package forwardlist

import "golang.org/x/exp/constraints"

// Equal 两个链表长度相同且按顺序逐个元素相等时返回true
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual 等价于 !Equal(a, b)
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// EqualFunc 使用eq比较元素的Equal
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.len != b.len {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Less 按字典序比较，a小于b时返回true。只使用元素的 < 运算。
func Less[T constraints.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessFunc 使用less比较元素的字典序比较
func LessFunc[T any](a, b *List[T], less func(T, T) bool) bool {
	x, y := a.head, b.head
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.value, y.value) {
			return true
		}
		if less(y.value, x.value) {
			return false
		}
	}
	// 公共前缀相同，较短的链表更小
	return x == nil && y != nil
}

// Greater 等价于 Less(b, a)
func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// LessOrEqual 等价于 !Greater(a, b)
func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Greater(a, b)
}

// GreaterOrEqual 等价于 !Less(a, b)
func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Compare 按字典序三路比较，a<b返回-1，a>b返回1，否则返回0。
// 与Less一致只依据元素的 < 和 >，因此含NaN时可能返回0而Equal返回false；
// 需要全序时使用 CompareFunc(a, b, cmp.Compare[T])。
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, compareOrdered[T])
}

// CompareFunc 使用cmp比较元素的三路比较
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	x, y := a.head, b.head
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return 1
	default:
		return 0
	}
}

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
