package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner 按组码/值对读取 DXF 标签流
type Scanner struct {
	reader  *bufio.Reader
	line    int
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		if line == "" {
			return "", false
		}
	}

	s.line++
	return line, true
}

func (s *Scanner) Next() bool {
	for {
		// 1. 读取 Code 行（跳过空行）
		codeLine, ok := s.readLine()
		if !ok {
			return false
		}

		codeStr := strings.TrimSpace(codeLine)
		if codeStr == "" {
			continue
		}

		code, err := strconv.Atoi(codeStr)
		if err != nil {
			s.err = fmt.Errorf("第 %d 行: 非法组码 %q", s.line, codeStr)
			return false
		}

		// 2. 读取 Value 行（Value 行缺失属于不完整的标签对）
		valueLine, ok := s.readLine()
		if !ok {
			if s.err == nil {
				s.err = fmt.Errorf("第 %d 行: 组码 %d 缺少值行", s.line, code)
			}
			return false
		}

		// 去掉行尾换行符，保留 Value 开头的空格（DXF 规范要求）
		s.LastTag = Tag{Code: code, Value: strings.TrimRight(valueLine, "\r\n")}
		return true
	}
}

func (s *Scanner) Err() error {
	return s.err
}
