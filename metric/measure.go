package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

var (
	// ErrInvalidGeometry 表示实体参数退化或越界（零/负半径、NaN 坐标）
	ErrInvalidGeometry = errors.New("非法几何参数")

	// ErrEmptyDrawing 表示没有任何实体贡献过包围盒，宽度/厚度无定义
	ErrEmptyDrawing = errors.New("图纸为空")
)

// Measure 是单个实体对各项总量的贡献
type Measure struct {
	Length    float64   // 切割路径长度贡献
	Area      float64   // 封闭面积贡献
	Bounds    core.BBox // 包围盒贡献
	HasBounds bool      // 注记类实体不贡献包围盒
}

// MeasureEntity 分类并测量一个实体（纯函数，不修改实体）
func MeasureEntity(ent entities.Entity) (Kind, Measure, error) {
	kind := Classify(ent)

	switch e := ent.(type) {
	case *entities.Line:
		m, err := MeasureLine(e)
		return kind, m, err
	case *entities.LWPolyline:
		m, err := MeasurePolyline(e.Vertices, e.Closed)
		return kind, m, err
	case *entities.Polyline:
		m, err := MeasurePolyline(e.Vertices, e.Closed)
		return kind, m, err
	case *entities.Circle:
		m, err := MeasureCircle(e)
		return kind, m, err
	case *entities.Arc:
		m, err := MeasureArc(e)
		return kind, m, err
	}

	// 注记只参与计数：不贡献长度/面积/包围盒
	// 未支持类型同样只计数，不中断处理
	return kind, Measure{}, nil
}

// MeasureLine 直线：长度为两端点欧氏距离，无面积
func MeasureLine(l *entities.Line) (Measure, error) {
	if !l.Start.Valid() || !l.End.Valid() {
		return Measure{}, fmt.Errorf("%w: LINE 坐标非法", ErrInvalidGeometry)
	}

	return Measure{
		Length:    l.Start.Distance(l.End),
		Bounds:    core.BBoxOf(l.Start, l.End),
		HasBounds: true,
	}, nil
}

// MeasurePolyline 多段线：长度为相邻顶点距离之和（闭合时补上收尾边），
// 闭合时面积按鞋带公式计算，先取绝对值再参与累加，避免绕向相互抵消
func MeasurePolyline(vertices []core.Point, closed bool) (Measure, error) {
	if len(vertices) == 0 {
		return Measure{}, nil
	}

	for _, v := range vertices {
		if !v.Valid() {
			return Measure{}, fmt.Errorf("%w: 多段线顶点坐标非法", ErrInvalidGeometry)
		}
	}

	var length float64
	for i := 1; i < len(vertices); i++ {
		length += vertices[i-1].Distance(vertices[i])
	}
	if closed && len(vertices) > 1 {
		length += vertices[len(vertices)-1].Distance(vertices[0])
	}

	var area float64
	if closed && len(vertices) >= 3 {
		area = math.Abs(shoelace(vertices))
	}

	return Measure{
		Length:    length,
		Area:      area,
		Bounds:    core.BBoxOf(vertices...),
		HasBounds: true,
	}, nil
}

// shoelace 有符号多边形面积，符号代表绕向
func shoelace(vertices []core.Point) float64 {
	var sum float64
	for i, curr := range vertices {
		next := vertices[(i+1)%len(vertices)]
		sum += curr.X*next.Y - next.X*curr.Y
	}

	return sum / 2
}

// MeasureCircle 圆：长度为周长 2πr，面积为 πr²，包围盒为整圆外接矩形
func MeasureCircle(c *entities.Circle) (Measure, error) {
	if !c.Center.Valid() || math.IsNaN(c.Radius) {
		return Measure{}, fmt.Errorf("%w: CIRCLE 坐标非法", ErrInvalidGeometry)
	}
	if c.Radius <= 0 {
		return Measure{}, fmt.Errorf("%w: CIRCLE 半径 %v", ErrInvalidGeometry, c.Radius)
	}

	return Measure{
		Length:    2 * math.Pi * c.Radius,
		Area:      math.Pi * c.Radius * c.Radius,
		Bounds:    c.BBox(),
		HasBounds: true,
	}, nil
}

// MeasureArc 圆弧：长度为 r×扫掠角(弧度)，开放曲线不贡献面积，
// 包围盒为两端点加落在扫掠范围内的象限极值点
func MeasureArc(a *entities.Arc) (Measure, error) {
	if !a.Center.Valid() || math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) || math.IsNaN(a.EndAngle) {
		return Measure{}, fmt.Errorf("%w: ARC 坐标非法", ErrInvalidGeometry)
	}
	if a.Radius <= 0 {
		return Measure{}, fmt.Errorf("%w: ARC 半径 %v", ErrInvalidGeometry, a.Radius)
	}

	return Measure{
		Length:    a.Radius * a.Sweep() * math.Pi / 180.0,
		Bounds:    a.BBox(),
		HasBounds: true,
	}, nil
}
