package entities

import (
	"math"

	"github.com/zooyer/dxfcut/core"
)

// Arc 圆弧，角度为度数，从起始角逆时针扫到终止角
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 组码 50
	EndAngle   float64 // 组码 51
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (a *Arc) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 30:
			a.Center.Z = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		default:
			a.parseCommon(t)
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// Sweep 计算逆时针扫过的角度（度数），终止角小于起始角时跨越 0/360
func (a *Arc) Sweep() float64 {
	sweep := math.Mod(a.EndAngle-a.StartAngle, 360)
	if sweep < 0 {
		sweep += 360
	}

	return sweep
}

// PointAt 计算圆弧上指定角度（度数）处的点
func (a *Arc) PointAt(angle float64) core.Point {
	rad := angle * math.Pi / 180.0
	return core.Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// ContainsAngle 判断角度（度数）是否落在扫掠范围内
func (a *Arc) ContainsAngle(angle float64) bool {
	delta := math.Mod(angle-a.StartAngle, 360)
	if delta < 0 {
		delta += 360
	}

	return delta <= a.Sweep()
}

// BBox 精确包围盒：两个端点加上落在扫掠范围内的四个象限极值点
func (a *Arc) BBox() core.BBox {
	points := []core.Point{
		a.PointAt(a.StartAngle),
		a.PointAt(a.EndAngle),
	}

	for _, extremum := range []float64{0, 90, 180, 270} {
		if a.ContainsAngle(extremum) {
			points = append(points, a.PointAt(extremum))
		}
	}

	return core.BBoxOf(points...)
}
