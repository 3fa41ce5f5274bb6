package core

import (
	"math"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// Distance 计算两点间的 XY 平面欧氏距离
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Valid 校验坐标是否为合法有限数
func (p Point) Valid() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Expand 合并一个点，返回扩展后的包围盒
func (b BBox) Expand(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// Union 合并两个包围盒
func (b BBox) Union(o BBox) BBox {
	return b.Expand(o.Min).Expand(o.Max)
}

// BBoxOf 计算一组点的包围盒
func BBoxOf(points ...Point) BBox {
	box := BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	for _, p := range points {
		box = box.Expand(p)
	}

	return box
}
