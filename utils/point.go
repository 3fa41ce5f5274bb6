package utils

import (
	"math"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// TransformPoint 将块内局部坐标映射到插入处的世界坐标
// 变换次序固定为 缩放 -> 绕 Z 轴旋转 -> 平移
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	sin, cos := math.Sincos(ins.Rotation * math.Pi / 180.0)

	sx, sy := p.X*ins.Scale.X, p.Y*ins.Scale.Y

	return core.Point{
		X: sx*cos - sy*sin + ins.InsertionPoint.X,
		Y: sx*sin + sy*cos + ins.InsertionPoint.Y,
		Z: p.Z*ins.Scale.Z + ins.InsertionPoint.Z,
	}
}
