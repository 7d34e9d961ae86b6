//go:build invariants

package forwardlist

// invariantsEnabled 在使用 invariants 或 race 构建标签编译时为 true，
// 此时会检查调用方契约（对空链表 PopFront、解引用 End 等）并校验链表结构。
const invariantsEnabled = true

// ownershipChecksEnabled 只在 invariants 构建标签下为 true。
// 检查迭代器是否属于本链表需要O(n)遍历，race构建不做该检查。
const ownershipChecksEnabled = true
