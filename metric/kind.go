package metric

import (
	"github.com/zooyer/dxfcut/entities"
)

// Kind 是语义分类，POLYLINE/LWPOLYLINE 同归多段线，TEXT/MTEXT 同归注记
type Kind string

const (
	KindLine     Kind = "LINE"
	KindPolyline Kind = "POLYLINE"
	KindCircle   Kind = "CIRCLE"
	KindArc      Kind = "ARC"
	KindText     Kind = "TEXT"
	KindOther    Kind = "OTHER"
)

// Kinds 按报表输出顺序列出所有分类
var Kinds = []Kind{KindLine, KindPolyline, KindCircle, KindArc, KindText, KindOther}

// Classify 返回实体的语义分类，未支持的类型一律归入 KindOther
func Classify(ent entities.Entity) Kind {
	switch ent.(type) {
	case *entities.Line:
		return KindLine
	case *entities.LWPolyline, *entities.Polyline:
		return KindPolyline
	case *entities.Circle:
		return KindCircle
	case *entities.Arc:
		return KindArc
	case *entities.Text:
		return KindText
	default:
		return KindOther
	}
}
