package metric

import (
	"fmt"
	"strings"

	"github.com/zooyer/dxfcut"
	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
	"github.com/zooyer/dxfcut/utils"
)

// Accumulator 折叠一次运行的全部实体贡献
// 所有折叠操作（求和、min/max）可交换可结合，实体顺序不影响结果
type Accumulator struct {
	blocks map[string]*dxfcut.Block
	strict bool

	counts    map[Kind]int
	length    float64
	area      float64
	bounds    core.BBox
	hasBounds bool
	boxes     []core.BBox
	warnings  []error
}

// NewAccumulator 创建一次运行的累加器，blocks 用于展开 INSERT 块引用（可为 nil）
// strict 模式下第一个非法实体即中断折叠，否则记录警告后继续
func NewAccumulator(blocks map[string]*dxfcut.Block, strict bool) *Accumulator {
	counts := make(map[Kind]int, len(Kinds))
	for _, kind := range Kinds {
		counts[kind] = 0
	}

	return &Accumulator{
		blocks: blocks,
		strict: strict,
		counts: counts,
	}
}

// Add 折叠一个实体：计数、累加长度/面积、合并包围盒
// INSERT 实体展开为块内子实体，经过插入变换后参与折叠
func (a *Accumulator) Add(ent entities.Entity) error {
	if ins, ok := ent.(*entities.Insert); ok {
		return a.addInsert(ins)
	}

	kind, m, err := MeasureEntity(ent)
	if err != nil {
		// 非法实体仍参与计数（它确实存在于图纸里），但不贡献几何量
		a.counts[kind]++
		if a.strict {
			return err
		}
		a.warnings = append(a.warnings, err)
		return nil
	}

	a.counts[kind]++
	a.merge(m)
	return nil
}

func (a *Accumulator) addInsert(ins *entities.Insert) error {
	// 块表键已统一大写，查找同样大写，避免大小写不一致漏解析
	block, ok := a.blocks[strings.ToUpper(ins.BlockName)]
	if !ok {
		// 找不到块定义时按未支持实体计数
		a.counts[KindOther]++
		a.warnings = append(a.warnings, fmt.Errorf("块 %q 未定义", ins.BlockName))
		return nil
	}

	for _, sub := range block.Entities {
		if nested, ok := sub.(*entities.Insert); ok {
			// 嵌套块的插入点同样相对父块基点
			shifted := *nested
			shifted.InsertionPoint.X -= block.Base.X
			shifted.InsertionPoint.Y -= block.Base.Y
			shifted.InsertionPoint.Z -= block.Base.Z
			if err := a.addInsert(utils.CombineInserts(ins, &shifted)); err != nil {
				return err
			}
			continue
		}

		kind, m, err := MeasureEntity(sub)
		if err != nil {
			a.counts[kind]++
			if a.strict {
				return err
			}
			a.warnings = append(a.warnings, err)
			continue
		}

		// 标量按插入比例换算，包围盒先平移到相对基点再变换到世界坐标
		m.Length *= utils.ScaleFactor(ins)
		m.Area *= utils.AreaFactor(ins)
		if m.HasBounds {
			m.Bounds.Min.X -= block.Base.X
			m.Bounds.Min.Y -= block.Base.Y
			m.Bounds.Max.X -= block.Base.X
			m.Bounds.Max.Y -= block.Base.Y
			m.Bounds = utils.TransformBBox(m.Bounds, ins)
		}

		a.counts[kind]++
		a.merge(m)
	}

	return nil
}

func (a *Accumulator) merge(m Measure) {
	a.length += m.Length
	a.area += m.Area

	if m.HasBounds {
		if a.hasBounds {
			a.bounds = a.bounds.Union(m.Bounds)
		} else {
			a.bounds, a.hasBounds = m.Bounds, true
		}
		a.boxes = append(a.boxes, m.Bounds)
	}
}

// Counts 返回各分类的实体数量
func (a *Accumulator) Counts() map[Kind]int {
	return a.counts
}

// Length 返回累计切割路径长度（图纸单位）
func (a *Accumulator) Length() float64 {
	return a.length
}

// Area 返回累计封闭面积（图纸单位的平方），重叠区域按设计重复计入
func (a *Accumulator) Area() float64 {
	return a.area
}

// Bounds 返回累计包围盒，没有任何几何实体时第二个返回值为 false
func (a *Accumulator) Bounds() (core.BBox, bool) {
	return a.bounds, a.hasBounds
}

// Warnings 返回宽松模式下跳过的实体错误
func (a *Accumulator) Warnings() []error {
	return a.warnings
}

// Parts 按间距合并实体包围盒，估算图纸上相互独立的零件数量
func (a *Accumulator) Parts(gap float64) int {
	return len(utils.MergeBoxes(a.boxes, gap))
}

// Collect 按文件顺序折叠文档中的全部实体
func Collect(doc *dxfcut.Document, strict bool) (*Accumulator, error) {
	acc := NewAccumulator(doc.Blocks, strict)
	for _, ent := range doc.Entities {
		if err := acc.Add(ent); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
