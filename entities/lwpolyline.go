package entities

import (
	"github.com/zooyer/dxfcut/core"
)

type LWPolyline struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	var x float64
	for {
		t := s.LastTag
		switch t.Code {
		case 10:
			x = t.AsFloat()
		case 20:
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: t.AsFloat()})
		case 70:
			// 组码 70 是标志位，低位 1 表示闭合
			l.Closed = t.AsInt()&0x01 != 0
		default:
			l.parseCommon(t)
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}

	return core.BBoxOf(l.Vertices...)
}
