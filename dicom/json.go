package dicom

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/raster-image/dicomsr/types"
)

// jsonElement mirrors the DICOM JSON model (PS3.18 Annex F): each attribute
// is keyed by its eight-digit hex tag and carries a VR plus a Value array.
type jsonElement struct {
	VR    string        `json:"vr"`
	Value []interface{} `json:"Value,omitempty"`
}

// MarshalJSON encodes a dataset into the DICOM JSON model.
//
// Key order within the JSON object is not significant; DecodeJSON restores
// elements in tag order.
func MarshalJSON(d *Dataset) ([]byte, error) {
	obj := make(map[string]jsonElement, d.Len())
	for _, tag := range d.Tags() {
		element, _ := d.GetElement(tag)
		je, err := toJSONElement(element)
		if err != nil {
			return nil, err
		}
		obj[fmt.Sprintf("%04X%04X", tag.Group, tag.Element)] = je
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes a DICOM JSON model document into a dataset.
// Elements are inserted in ascending tag order.
func UnmarshalJSON(data []byte) (*Dataset, error) {
	var obj map[string]jsonElement
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ds := NewDataset()
	for _, key := range keys {
		tag, err := parseJSONTag(key)
		if err != nil {
			return nil, err
		}
		if err := fromJSONElement(ds, tag, obj[key]); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func toJSONElement(element *Element) (jsonElement, error) {
	je := jsonElement{VR: element.VR}

	switch v := element.Value.(type) {
	case string:
		if v != "" {
			je.Value = []interface{}{v}
		}
	case []string:
		for _, s := range v {
			je.Value = append(je.Value, s)
		}
	case int:
		je.Value = []interface{}{v}
	case []int:
		for _, n := range v {
			je.Value = append(je.Value, n)
		}
	case float64:
		je.Value = []interface{}{v}
	case []float64:
		for _, f := range v {
			je.Value = append(je.Value, f)
		}
	case []*Dataset:
		for _, item := range v {
			nested := make(map[string]jsonElement, item.Len())
			for _, tag := range item.Tags() {
				el, _ := item.GetElement(tag)
				nestedJE, err := toJSONElement(el)
				if err != nil {
					return jsonElement{}, err
				}
				nested[fmt.Sprintf("%04X%04X", tag.Group, tag.Element)] = nestedJE
			}
			je.Value = append(je.Value, nested)
		}
	default:
		return jsonElement{}, fmt.Errorf("dicom: unsupported element value type %T for %s", v, element.Tag)
	}

	return je, nil
}

func fromJSONElement(ds *Dataset, tag types.Tag, je jsonElement) error {
	if je.VR == types.VR_SQ {
		items := make([]*Dataset, 0, len(je.Value))
		for _, raw := range je.Value {
			obj, ok := raw.(map[string]interface{})
			if !ok {
				return fmt.Errorf("dicom: sequence item for %s is not an object", tag)
			}
			item, err := datasetFromJSONObject(obj)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		ds.SetSequence(tag, items)
		return nil
	}

	switch {
	case len(je.Value) == 0:
		ds.SetString(tag, je.VR, "")
	case isNumericVR(je.VR):
		values := make([]float64, 0, len(je.Value))
		for _, raw := range je.Value {
			f, ok := raw.(float64)
			if !ok {
				return fmt.Errorf("dicom: non-numeric value for %s (%s)", tag, je.VR)
			}
			values = append(values, f)
		}
		ds.SetFloats(tag, je.VR, values)
	default:
		values := make([]string, 0, len(je.Value))
		for _, raw := range je.Value {
			switch s := raw.(type) {
			case string:
				values = append(values, s)
			case float64:
				values = append(values, strconv.FormatFloat(s, 'f', -1, 64))
			default:
				return fmt.Errorf("dicom: unsupported JSON value %T for %s", raw, tag)
			}
		}
		if len(values) == 1 {
			ds.SetString(tag, je.VR, values[0])
		} else {
			ds.SetStrings(tag, je.VR, values)
		}
	}
	return nil
}

func datasetFromJSONObject(obj map[string]interface{}) (*Dataset, error) {
	// Round-trip the nested object through the element type so sequences
	// of arbitrary depth decode uniformly.
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(raw)
}

func parseJSONTag(key string) (types.Tag, error) {
	if len(key) != 8 {
		return types.Tag{}, fmt.Errorf("dicom: invalid JSON tag key %q", key)
	}
	group, err := strconv.ParseUint(key[:4], 16, 16)
	if err != nil {
		return types.Tag{}, fmt.Errorf("dicom: invalid JSON tag key %q", key)
	}
	element, err := strconv.ParseUint(key[4:], 16, 16)
	if err != nil {
		return types.Tag{}, fmt.Errorf("dicom: invalid JSON tag key %q", key)
	}
	return types.Tag{Group: uint16(group), Element: uint16(element)}, nil
}

func isNumericVR(vr string) bool {
	switch vr {
	case types.VR_FL, types.VR_FD, types.VR_SL, types.VR_SS,
		types.VR_UL, types.VR_US, types.VR_SV, types.VR_UV:
		return true
	default:
		return false
	}
}
