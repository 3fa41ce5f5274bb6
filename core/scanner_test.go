package core

import (
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}

	if scanner.Next() {
		t.Errorf("流结束后仍读到标签: %+v", scanner.LastTag)
	}
}

func TestScanner_BlankLines(t *testing.T) {
	// 空行应当被跳过，不影响标签配对
	dxfData := "\n0\nLINE\n\n\n10\n1.5\n"
	scanner := NewScanner(strings.NewReader(dxfData))

	if !scanner.Next() || scanner.LastTag.Code != 0 || scanner.LastTag.Value != "LINE" {
		t.Fatalf("第一组标签不符: %+v, err: %v", scanner.LastTag, scanner.Err())
	}

	if !scanner.Next() || scanner.LastTag.Code != 10 || scanner.LastTag.AsFloat() != 1.5 {
		t.Fatalf("第二组标签不符: %+v, err: %v", scanner.LastTag, scanner.Err())
	}
}

func TestScanner_BadCode(t *testing.T) {
	scanner := NewScanner(strings.NewReader("abc\nLINE\n"))
	if scanner.Next() {
		t.Fatal("非法组码应当读取失败")
	}
	if scanner.Err() == nil {
		t.Fatal("非法组码应当返回错误")
	}
}

func TestScanner_MissingValue(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\n"))
	if scanner.Next() {
		t.Fatal("缺少值行应当读取失败")
	}
	if scanner.Err() == nil {
		t.Fatal("缺少值行应当返回错误")
	}
}

func TestPoint_Distance(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	if d := p.Distance(q); d != 5 {
		t.Errorf("距离不符: 期望 5, 得到 %v", d)
	}
}

func TestBBoxOf(t *testing.T) {
	box := BBoxOf(Point{X: 1, Y: 5}, Point{X: -2, Y: 3}, Point{X: 0, Y: 7})
	if box.Min.X != -2 || box.Min.Y != 3 || box.Max.X != 1 || box.Max.Y != 7 {
		t.Errorf("包围盒不符: %+v", box)
	}
}
