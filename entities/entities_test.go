package entities

import (
	"strings"
	"testing"

	"github.com/zooyer/dxfcut/core"
)

// parseFragment 从片段首个组码 0 标签开始解析一个实体
func parseFragment(t *testing.T, fragment string) Entity {
	t.Helper()

	scanner := core.NewScanner(strings.NewReader(fragment))
	if !scanner.Next() || scanner.LastTag.Code != 0 {
		t.Fatalf("片段格式错误: %+v, err: %v", scanner.LastTag, scanner.Err())
	}

	ent := CreateEntity(scanner.LastTag.Value)
	if err := ent.Parse(scanner); err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	return ent
}

func TestLine_Parse(t *testing.T) {
	fragment := "0\nLINE\n5\n1A\n8\n0\n10\n1.0\n20\n2.0\n11\n4.0\n21\n6.0\n0\nEOF\n"

	line, ok := parseFragment(t, fragment).(*Line)
	if !ok {
		t.Fatal("实体类型不是 LINE")
	}
	if line.Start.X != 1 || line.Start.Y != 2 || line.End.X != 4 || line.End.Y != 6 {
		t.Errorf("坐标不符: %+v", line)
	}
	if line.Handle != "1A" || line.LayerName != "0" {
		t.Errorf("通用属性不符: %+v", line.BaseEntity)
	}
}

func TestLWPolyline_Parse(t *testing.T) {
	fragment := "0\nLWPOLYLINE\n8\n0\n70\n1\n10\n0.0\n20\n0.0\n10\n2.0\n20\n0.0\n10\n2.0\n20\n3.0\n0\nEOF\n"

	polyline, ok := parseFragment(t, fragment).(*LWPolyline)
	if !ok {
		t.Fatal("实体类型不是 LWPOLYLINE")
	}
	if !polyline.Closed {
		t.Error("闭合标志未解析")
	}
	if len(polyline.Vertices) != 3 {
		t.Fatalf("顶点数不符: %d", len(polyline.Vertices))
	}
	if polyline.Vertices[2].X != 2 || polyline.Vertices[2].Y != 3 {
		t.Errorf("顶点不符: %+v", polyline.Vertices)
	}
}

func TestPolyline_Parse(t *testing.T) {
	// 重量级多段线: 顶点以 VERTEX 子实体跟随，SEQEND 收尾
	fragment := strings.Join([]string{
		"0", "POLYLINE", "8", "0", "70", "1",
		"0", "VERTEX", "8", "0", "10", "0.0", "20", "0.0",
		"0", "VERTEX", "8", "0", "10", "3.0", "20", "0.0",
		"0", "VERTEX", "8", "0", "10", "3.0", "20", "4.0",
		"0", "SEQEND", "8", "0",
		"0", "EOF",
	}, "\n") + "\n"

	polyline, ok := parseFragment(t, fragment).(*Polyline)
	if !ok {
		t.Fatal("实体类型不是 POLYLINE")
	}
	if !polyline.Closed {
		t.Error("闭合标志未解析")
	}
	if len(polyline.Vertices) != 3 {
		t.Fatalf("顶点数不符: %d", len(polyline.Vertices))
	}
	if polyline.Vertices[1].X != 3 || polyline.Vertices[2].Y != 4 {
		t.Errorf("顶点不符: %+v", polyline.Vertices)
	}
}

func TestCircle_Parse(t *testing.T) {
	fragment := "0\nCIRCLE\n8\n0\n10\n5.0\n20\n6.0\n40\n2.5\n0\nEOF\n"

	circle, ok := parseFragment(t, fragment).(*Circle)
	if !ok {
		t.Fatal("实体类型不是 CIRCLE")
	}
	if circle.Center.X != 5 || circle.Center.Y != 6 || circle.Radius != 2.5 {
		t.Errorf("参数不符: %+v", circle)
	}

	box := circle.BBox()
	if box.Min.X != 2.5 || box.Max.X != 7.5 || box.Min.Y != 3.5 || box.Max.Y != 8.5 {
		t.Errorf("包围盒不符: %+v", box)
	}
}

func TestArc_Sweep(t *testing.T) {
	tests := []struct {
		start, end float64
		sweep      float64
	}{
		{0, 90, 90},
		{0, 180, 180},
		{270, 90, 180}, // 跨越 0/360
		{350, 10, 20},
		{45, 45, 0},
	}

	for _, tt := range tests {
		arc := Arc{StartAngle: tt.start, EndAngle: tt.end}
		if sweep := arc.Sweep(); sweep != tt.sweep {
			t.Errorf("扫掠角 %v->%v 不符: 期望 %v, 得到 %v", tt.start, tt.end, tt.sweep, sweep)
		}
	}
}

func TestArc_ContainsAngle(t *testing.T) {
	arc := Arc{StartAngle: 350, EndAngle: 20}

	for _, angle := range []float64{350, 0, 10, 20} {
		if !arc.ContainsAngle(angle) {
			t.Errorf("角度 %v 应在扫掠范围内", angle)
		}
	}
	for _, angle := range []float64{90, 180, 270, 340} {
		if arc.ContainsAngle(angle) {
			t.Errorf("角度 %v 不应在扫掠范围内", angle)
		}
	}
}

func TestText_Parse(t *testing.T) {
	fragment := "0\nMTEXT\n8\n0\n10\n1.0\n20\n2.0\n40\n3.5\n1\n下料清单\n0\nEOF\n"

	text, ok := parseFragment(t, fragment).(*Text)
	if !ok {
		t.Fatal("实体类型不是 MTEXT")
	}
	if text.Type() != "MTEXT" {
		t.Errorf("类型名不符: %v", text.Type())
	}
	if text.Content != "下料清单" || text.Height != 3.5 {
		t.Errorf("参数不符: %+v", text)
	}
}

func TestCreateEntity_Unknown(t *testing.T) {
	ent := CreateEntity("HATCH")
	if _, ok := ent.(*Unknown); !ok {
		t.Fatalf("未注册类型应返回 Unknown: %T", ent)
	}
	if ent.Type() != "HATCH" {
		t.Errorf("类型名不符: %v", ent.Type())
	}
}
