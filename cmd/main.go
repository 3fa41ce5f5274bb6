package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/dxfcut"
	"github.com/zooyer/dxfcut/metric"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"
)

const (
	partGap = 10   // 零件分组容错(图纸单位)，不超过则认为属于同一零件
	epsilon = 1e-9 // 浮点数对比精度误差
)

var (
	unit      = flag.Float64("unit", 0, "图纸单位到米的换算系数，0 表示按 $INSUNITS 推断，推断失败按毫米处理")
	thickness = flag.Float64("thickness", 0.002, "板材厚度(米)")
	density   = flag.Float64("density", 7.85, "切割断面面密度(kg/m²)，体密度先乘以切缝宽度")
	strict    = flag.Bool("strict", false, "严格模式: 遇到非法实体立即中断")
	csv       = flag.Bool("csv", true, "在图纸旁生成同名 csv 报表")
)

// pickFile 命令行没给文件时弹出选择框（支持直接拖文件到程序上）
func pickFile() (string, error) {
	if flag.NArg() > 0 {
		return flag.Arg(0), nil
	}

	return zenity.SelectFile(
		zenity.Title("请选择要估算的 DXF 图纸"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
}

// unitFactor 换算系数优先级: 命令行 > 图纸 $INSUNITS > 默认毫米
func unitFactor(doc *dxfcut.Document) float64 {
	if *unit > 0 {
		return *unit
	}
	if factor := doc.Units.MeterFactor(); factor > 0 {
		return factor
	}

	return 0.001
}

func writeCSV(filename string, record metric.Record, parts int) error {
	if err := os.WriteFile(filename, []byte("项目,数值\n"), 0644); err != nil {
		return err
	}

	var lines []string
	for _, kind := range metric.Kinds {
		lines = append(lines, fmt.Sprintf("数量(%s),%d", kind, record.Counts[kind]))
	}
	lines = append(lines,
		fmt.Sprintf("封闭面积,%.2f", record.TotalArea),
		fmt.Sprintf("厚度,%.2f", record.Thickness),
		fmt.Sprintf("宽度,%.2f", record.Width),
		fmt.Sprintf("切割长度(米),%.3f", record.CutLength),
		fmt.Sprintf("重量(kg),%.3f", record.Weight),
		fmt.Sprintf("零件数,%d", parts),
	)

	return xos.AppendFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

func main() {
	defer xos.PauseExit()

	flag.Parse()

	filename, err := pickFile()
	if err != nil {
		fmt.Println("未选择图纸文件:", err)
		return
	}

	if !strings.EqualFold(filepath.Ext(filename), ".dxf") {
		fmt.Println("请提供 .dxf 格式的图纸文件！")
		return
	}

	doc, err := dxfcut.Open(filename)
	if err != nil {
		fmt.Println("图纸解析失败:", err)
		return
	}

	config := metric.Config{
		UnitFactor: unitFactor(doc),
		Thickness:  *thickness,
		Density:    *density,
		Strict:     *strict,
	}

	acc, err := metric.Collect(doc, config.Strict)
	if err != nil {
		fmt.Println("图纸处理中断:", err)
		return
	}

	record, err := metric.Derive(acc, config)
	if err != nil {
		if errors.Is(err, metric.ErrEmptyDrawing) {
			fmt.Println("图纸中没有几何实体，无法估算尺寸！")
		} else {
			fmt.Println("估算失败:", err)
		}
		return
	}

	parts := acc.Parts(partGap)

	// 打印报表
	fmt.Println("实体数量统计:")
	for _, kind := range metric.Kinds {
		fmt.Printf("  %-10s %d\n", kind, record.Counts[kind])
	}
	fmt.Println()
	fmt.Printf("封闭面积合计: %.2f 平方图纸单位\n", record.TotalArea)
	fmt.Printf("图形厚度(Y): %.2f 图纸单位\n", record.Thickness)
	fmt.Printf("图形宽度(X): %.2f 图纸单位\n", record.Width)
	fmt.Printf("切割长度: %.3f 米 (换算系数 %v)\n", record.CutLength, config.UnitFactor)
	fmt.Printf("估算重量: %.3f kg (板厚 %v 米, 面密度 %v kg/m²)\n", record.Weight, config.Thickness, config.Density)
	fmt.Printf("零件数: %d\n", parts)

	if xmath.Equal(record.TotalArea, 0, epsilon) {
		fmt.Println("⚠️ 未检测到封闭图形，面积为 0")
	}

	for _, warning := range acc.Warnings() {
		fmt.Println("⚠️ 已跳过:", warning)
	}

	// 写入报表文件
	if *csv {
		var out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"
		if err = writeCSV(out, record, parts); err != nil {
			fmt.Println("报表写入失败:", err)
			return
		}
		fmt.Println()
		fmt.Println("写入文件:", out)
	}
}
