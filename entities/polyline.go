package entities

import (
	"github.com/zooyer/dxfcut/core"
)

// Polyline 是重量级多段线，顶点以 VERTEX 子实体形式跟随，直到 SEQEND
type Polyline struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

func (p *Polyline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 70:
			p.Closed = t.AsInt()&0x01 != 0
		default:
			p.parseCommon(t)
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}

	// 继续在当前流中抓取 VERTEX 直到 SEQEND
	for {
		t := s.LastTag
		if t.Code == 0 {
			switch t.Value {
			case "SEQEND":
				// 消耗掉 SEQEND 自身的标签
				for s.Next() && s.LastTag.Code != 0 {
				}
				return nil
			case "VERTEX":
				var vertex core.Point
				for s.Next() && s.LastTag.Code != 0 {
					switch s.LastTag.Code {
					case 10:
						vertex.X = s.LastTag.AsFloat()
					case 20:
						vertex.Y = s.LastTag.AsFloat()
					case 30:
						vertex.Z = s.LastTag.AsFloat()
					}
				}
				p.Vertices = append(p.Vertices, vertex)
				continue // 内层循环已经停在下一个组码 0 上
			default:
				// 顶点链之外的实体，交还给上层
				return nil
			}
		}
		if !s.Next() {
			return nil
		}
	}
}

func (p *Polyline) BBox() core.BBox {
	if len(p.Vertices) == 0 {
		return core.BBox{}
	}

	return core.BBoxOf(p.Vertices...)
}
