package resolver

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Key 是一个备用查找键的名字，例如 code、email、name。
// 每种实体在装配时显式声明自己的键以及键的先后顺序，
// 不允许依赖隐式约定。
type Key string

var (
	// ErrMissingIdentifier 必填的标识符为空
	ErrMissingIdentifier = errors.New("缺少标识符")
	// ErrNotFound 标识符合法，但没有命中任何有效记录
	ErrNotFound = errors.New("标识符无法解析")
	// ErrRecordNotFound 由 Lookup 的实现返回，表示单次查找未命中。
	// DAO 层需要把 gorm.ErrRecordNotFound 转换成这个错误。
	ErrRecordNotFound = errors.New("记录不存在")
)

// Lookup 是解析器对数据层的全部要求。
// 两个方法都只允许命中未被软删除的记录。
type Lookup interface {
	// ByID 按规范 ID 精确查找，返回规范 ID
	ByID(ctx context.Context, id string) (string, error)
	// ByKey 按备用键做大小写不敏感的精确匹配，返回第一条命中记录的规范 ID
	ByKey(ctx context.Context, key Key, value string) (string, error)
}

// Resolver 把调用方给的字符串（可能是规范 ID，也可能是人类友好的
// 名字/编码/邮箱）解析成规范 ID。
type Resolver struct {
	lookup Lookup
	keys   []Key
}

// New 创建一个解析器。keys 的顺序就是备用键的查找顺序，
// 越靠前的键越先查，第一个命中即返回。
func New(lookup Lookup, keys ...Key) *Resolver {
	return &Resolver{
		lookup: lookup,
		keys:   keys,
	}
}

// Resolve 解析一个标识符。
//   - identifier 为空：required 为 true 时返回 ErrMissingIdentifier，
//     否则返回空串，表示"没有值"，这是一个合法结果而不是失败。
//   - identifier 是 UUID 形状：只按规范 ID 查找，绝不回落到备用键。
//     一个 UUID 字符串不应该被拿去和 name 列比较。
//   - 其余情况：按配置好的键顺序逐个查找。
//
// required 为 false 时，未命中同样返回空串而非错误。
func (r *Resolver) Resolve(ctx context.Context, identifier string, required bool) (string, error) {
	if identifier == "" {
		if required {
			return "", ErrMissingIdentifier
		}
		return "", nil
	}
	if isCanonicalID(identifier) {
		id, err := r.lookup.ByID(ctx, identifier)
		return r.result(id, required, err)
	}
	for _, key := range r.keys {
		id, err := r.lookup.ByKey(ctx, key, identifier)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrRecordNotFound) {
			return "", err
		}
	}
	return r.result("", required, ErrRecordNotFound)
}

func (r *Resolver) result(id string, required bool, err error) (string, error) {
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, ErrRecordNotFound):
		if required {
			return "", ErrNotFound
		}
		return "", nil
	default:
		return "", err
	}
}

// isCanonicalID 严格校验 8-4-4-4-12 的标准 UUID 形状，十六进制大小写不敏感。
// uuid.Parse 本身还接受 urn 前缀、花括号和无连字符变体，
// 这里用长度卡掉那些形式。
func isCanonicalID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
