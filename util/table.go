package util

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/fatih/structs"
	"github.com/olekukonko/tablewriter"
)

var out io.Writer

func init() {
	out = os.Stdout
}

// SetOut is used by unit tests to change where we're writing
func SetOut(newOut io.Writer) {
	out = newOut
}

func printf(format string, a ...interface{}) (int, error) {
	return fmt.Fprintf(out, format, a...)
}

// ObjField references a field to print.
// Name is the name of the field, which will print on the left side of table.
// Field is the field to lookup in the object.
// Transform is a function which will transform the given field value.
type ObjField struct {
	Name      string
	Field     string
	Transform func(interface{}) string
}

// PrintObj prints a struct or a map as a two column table. Best effort, no errors.
//
// key   value
// key   value
//
func PrintObj(fields []ObjField, obj interface{}) error {
	v := GetValue(obj)
	switch v.Kind() {
	case reflect.Struct, reflect.Map:
		return printObj(fields, obj)
	default:
		printf("%v\n", obj)
	}
	return nil
}

func printObj(fields []ObjField, obj interface{}) error {
	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetColumnSeparator("  ")
	table.SetCenterSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, field := range fields {
		v := getFieldValue(obj, field)
		if v == nil {
			continue
		}
		var val string
		if field.Transform != nil {
			val = field.Transform(v)
		} else {
			switch v.(type) {
			case int, int32, int64, float32, float64:
				val = color.HiBlueString("%v", v)
			default:
				val = fmt.Sprintf("%v", v)
			}
		}
		table.Append([]string{color.GreenString("%s:", field.Name), val})
	}
	table.Render()
	return nil
}

func getFieldValue(obj interface{}, field ObjField) interface{} {
	f := field.Field
	if f == "" {
		f = field.Name
	}
	v := GetValue(obj)
	switch v.Kind() {
	case reflect.Struct:
		sf := GetJSONField(obj, f)
		if sf == nil {
			return nil
		}
		return sf.Value()
	case reflect.Map:
		ret, ok := obj.(map[string]interface{})[f]
		if !ok {
			return nil
		}
		return ret
	default:
		return fmt.Sprintf("%v", obj)
	}
}

// GetValue returns the reflect.Value of obj, following pointers
func GetValue(obj interface{}) reflect.Value {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

// GetJSONField returns the struct field whose json tag name is field
func GetJSONField(obj interface{}, field string) *structs.Field {
	for _, f := range structs.New(obj).Fields() {
		name := strings.Split(f.Tag("json"), ",")[0]
		if name == field {
			return f
		}
	}
	return nil
}
