package domain

import "gorm.io/datatypes"

func setColumn[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}

func setListColumn(cols map[string]any, column string, v *[]string) {
	if v != nil {
		cols[column] = nonNil(datatypes.JSONSlice[string](*v))
	}
}

func applyValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func applyOptional[T any](dst **T, v *T) {
	if v != nil {
		val := *v
		*dst = &val
	}
}

func applyList(dst *datatypes.JSONSlice[string], v *[]string) {
	if v != nil {
		*dst = nonNil(datatypes.JSONSlice[string](append([]string(nil), *v...)))
	}
}

// nonNil не дает спискам сериализоваться в JSON как null.
func nonNil(s datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}
	return s
}
