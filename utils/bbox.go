package utils

import (
	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// TransformBBox 执行矩阵变换：将局部坐标包围盒变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
	}

	world := make([]core.Point, 0, len(corners))
	for _, p := range corners {
		world = append(world, TransformPoint(p, ins))
	}

	return core.BBoxOf(world...)
}

// MergeBoxes 合并相邻/重叠的矩形，gap 以内视为同一组
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr = curr.Union(boxes[j])
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// InBox 判断点是否落在 BBox 内（含边界）
func InBox(box core.BBox, point core.Point) bool {
	return point.X >= box.Min.X && point.X <= box.Max.X &&
		point.Y >= box.Min.Y && point.Y <= box.Max.Y
}
