package entities

import (
	"github.com/zooyer/dxfcut/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Type() string
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
}

func (b *BaseEntity) Type() string { return b.TypeName }

// parseCommon 处理所有实体共有的组码，返回是否已消费
func (b *BaseEntity) parseCommon(tag core.Tag) bool {
	switch tag.Code {
	case 5:
		b.Handle = tag.AsString()
	case 8:
		b.LayerName = tag.AsString()
	default:
		return false
	}

	return true
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体，未注册的类型返回 Unknown
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}

	return &Unknown{BaseEntity: BaseEntity{TypeName: typeName}}
}
