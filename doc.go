package dxfcut

import (
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// Units 对应 HEADER 段 $INSUNITS(组码 70) 声明的图纸单位
type Units int

const (
	UnitsUnitless   Units = 0
	UnitsInches     Units = 1
	UnitsFeet       Units = 2
	UnitsMillimeter Units = 4
	UnitsCentimeter Units = 5
	UnitsMeter      Units = 6
)

// MeterFactor 返回图纸单位到米的换算系数，未知单位返回 0
func (u Units) MeterFactor() float64 {
	switch u {
	case UnitsInches:
		return 0.0254
	case UnitsFeet:
		return 0.3048
	case UnitsMillimeter:
		return 0.001
	case UnitsCentimeter:
		return 0.01
	case UnitsMeter:
		return 1
	}

	return 0
}

type Block struct {
	Name     string
	Base     core.Point // 块基点(组码 10/20/30)，块内坐标相对此点
	Entities []entities.Entity
}

type Document struct {
	Units    Units
	Blocks   map[string]*Block
	Entities []entities.Entity
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		switch tag.Code {
		case 9:
			variable = strings.ToUpper(tag.AsString())
		case 70:
			if variable == "$INSUNITS" {
				d.Units = Units(tag.AsInt())
			}
		}
	}
}

func (d *Document) parseBlocks(scanner *core.Scanner) {
	var currentBlock *Block
	if !scanner.Next() {
		return
	}
	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			switch strings.ToUpper(tag.Value) {
			case "ENDSEC":
				return
			case "BLOCK":
				currentBlock = &Block{Entities: []entities.Entity{}}
				// 消耗 BLOCK 头，顺带取出块名(组码 2)和基点(组码 10/20/30)
				for scanner.Next() && scanner.LastTag.Code != 0 {
					switch scanner.LastTag.Code {
					case 2:
						currentBlock.Name = strings.ToUpper(scanner.LastTag.AsString())
					case 10:
						currentBlock.Base.X = scanner.LastTag.AsFloat()
					case 20:
						currentBlock.Base.Y = scanner.LastTag.AsFloat()
					case 30:
						currentBlock.Base.Z = scanner.LastTag.AsFloat()
					}
				}
				d.Blocks[currentBlock.Name] = currentBlock
				continue // 已停在下一个组码 0
			case "ENDBLK":
				currentBlock = nil
			default:
				if currentBlock != nil {
					ent := entities.CreateEntity(tag.Value)
					if err := ent.Parse(scanner); err == nil {
						currentBlock.Entities = append(currentBlock.Entities, ent)
					}
					continue // Parse 内部已经停在下一个组码 0
				}
			}
		}
		if !scanner.Next() {
			return
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(tag.Value)
			if err := ent.Parse(scanner); err == nil {
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Blocks:   make(map[string]*Block),
			Entities: make([]entities.Entity, 0, 1024),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "HEADER":
				document.parseHeader(scanner)
			case "BLOCKS":
				document.parseBlocks(scanner)
			case "ENTITIES":
				document.parseEntities(scanner)
			}
		}
	}

	return document, scanner.Err()
}
