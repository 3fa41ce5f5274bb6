package utils

import (
	"math"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// CombineInserts 合并嵌套块的变换：子块先经过父块的 缩放 -> 旋转 -> 平移
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	return &entities.Insert{
		BlockName: child.BlockName,
		Rotation:  parent.Rotation + child.Rotation,
		Scale: core.Point{
			X: parent.Scale.X * child.Scale.X,
			Y: parent.Scale.Y * child.Scale.Y,
			Z: parent.Scale.Z * child.Scale.Z,
		},
		InsertionPoint: TransformPoint(child.InsertionPoint, parent),
	}
}

// ScaleFactor 返回 Insert 对标量长度的缩放系数
// 均匀缩放时精确等于 |Sx|，非均匀缩放取几何平均作为近似
func ScaleFactor(ins *entities.Insert) float64 {
	return math.Sqrt(math.Abs(ins.Scale.X * ins.Scale.Y))
}

// AreaFactor 返回 Insert 对面积的缩放系数
func AreaFactor(ins *entities.Insert) float64 {
	return math.Abs(ins.Scale.X * ins.Scale.Y)
}
