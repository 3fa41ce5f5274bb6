package metric

import (
	"errors"
	"fmt"
	"maps"

	"github.com/zooyer/dxfcut"
)

// ErrInvalidConfig 表示换算配置缺失或越界
var ErrInvalidConfig = errors.New("非法换算配置")

// Config 是派生量计算所需的外部输入
type Config struct {
	UnitFactor float64 // 图纸单位 -> 米 的换算系数（如毫米图纸为 0.001）
	Thickness  float64 // 板材厚度（米）
	Density    float64 // 切割断面面密度（kg/m²），体密度需先乘以切缝宽度
	Strict     bool    // 严格模式：遇到非法实体中断而不是跳过
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.UnitFactor <= 0 {
		return fmt.Errorf("%w: 单位换算系数 %v", ErrInvalidConfig, c.UnitFactor)
	}
	if c.Thickness < 0 {
		return fmt.Errorf("%w: 板材厚度 %v", ErrInvalidConfig, c.Thickness)
	}
	if c.Density < 0 {
		return fmt.Errorf("%w: 材料密度 %v", ErrInvalidConfig, c.Density)
	}

	return nil
}

// Record 是一次运行的最终度量结果
type Record struct {
	Counts    map[Kind]int // 各分类实体数量
	TotalArea float64      // 封闭面积合计（图纸单位²）
	Thickness float64      // 图形 Y 向尺寸（图纸单位，沿用行业口径的"厚度"叫法）
	Width     float64      // 图形 X 向尺寸（图纸单位）
	CutLength float64      // 切割路径长度（米）
	Weight    float64      // 估算重量（kg）
}

// Derive 由累加器和换算配置计算派生量
//
// 重量公式: weight = 切割长度[m] × 板厚[m] × 面密度[kg/m²]
// 量纲: m × m × kg/m² = kg，切割长度乘板厚即切割断面的总面积
func Derive(acc *Accumulator, config Config) (record Record, err error) {
	if err = config.Validate(); err != nil {
		return
	}

	bounds, ok := acc.Bounds()
	if !ok {
		// 只有注记或空文件时宽度/厚度无定义，不能悄悄返回 0×0
		err = ErrEmptyDrawing
		return
	}

	cutLength := acc.Length() * config.UnitFactor

	return Record{
		// 拷贝计数表，结果产出后不随累加器继续折叠而变化
		Counts:    maps.Clone(acc.Counts()),
		TotalArea: acc.Area(),
		Thickness: bounds.Max.Y - bounds.Min.Y,
		Width:     bounds.Max.X - bounds.Min.X,
		CutLength: cutLength,
		Weight:    cutLength * config.Thickness * config.Density,
	}, nil
}

// Run 折叠文档中的全部实体并计算派生量
func Run(doc *dxfcut.Document, config Config) (Record, error) {
	acc, err := Collect(doc, config.Strict)
	if err != nil {
		return Record{}, err
	}

	return Derive(acc, config)
}
