package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/gjson"

	"linq_tool/pkg/initutil"
	"linq_tool/pkg/linq"
	"linq_tool/pkg/seqjson"
)

type printer struct {
	out    io.Writer
	format initutil.OutputFormat
	path   string
}

func (p *printer) indent() bool {
	return p.format == initutil.OutputPretty
}

// stream 输出一个序列，table 格式下每个元素一行
func (p *printer) stream(s linq.Stream[gjson.Result]) error {
	if p.format != initutil.OutputTable {
		data, err := seqjson.Encode(s, p.indent())
		if err != nil {
			return err
		}
		_, err = p.out.Write(data)
		return err
	}

	header := p.path
	if header == "" {
		header = "value"
	}
	key := seqjson.KeyString(p.path)
	raw := seqjson.KeyRaw("")
	rows := linq.Select(linq.SelectIndexed(s), func(it linq.Indexed[gjson.Result]) []string {
		return []string{strconv.Itoa(it.Index), key(it.Value), raw(it.Value)}
	})

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"#", header, "json"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows.ToSlice())
	table.Render()

	_, err := fmt.Fprintf(p.out, "共 %s 个元素\n", humanize.Comma(int64(s.Len())))
	return err
}

// value 输出一个标量结果
func (p *printer) value(name string, v any) error {
	if p.format != initutil.OutputTable {
		data, err := seqjson.EncodeValue(v, p.indent())
		if err != nil {
			return err
		}
		_, err = p.out.Write(data)
		return err
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"query", "result"})
	table.SetAutoWrapText(false)
	table.Append([]string{name, humanizeValue(v)})
	table.Render()
	return nil
}

// 数字加千分位，方便阅读
func humanizeValue(v any) string {
	switch x := v.(type) {
	case int:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case float64:
		return humanize.Commaf(x)
	case gjson.Result:
		return x.Raw
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
