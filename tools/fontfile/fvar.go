// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package fontfile reads the variation axes and named instances of an
// existing variable font so that they can seed a naming configuration.
package fontfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/sfnt/header"
)

var _ = fmt.Print

const (
	fvar_header_size = 16
	axis_record_size = 20
	// set on axes that should not be exposed in user interfaces
	hidden_axis_flag = 0x0001
)

var ErrNotVariable = errors.New("the font has no fvar table, it is not a variable font")

type Axis struct {
	Tag     string  `json:"tag"`
	Min     float64 `json:"min"`
	Default float64 `json:"default"`
	Max     float64 `json:"max"`
	Hidden  bool    `json:"hidden,omitempty"`
	Name_id uint16  `json:"name_id"`
}

type Instance struct {
	Subfamily_name_id  uint16    `json:"subfamily_name_id"`
	Postscript_name_id uint16    `json:"postscript_name_id,omitempty"`
	Coordinates        []float64 `json:"coordinates"`
}

type Fvar struct {
	Axes      []Axis     `json:"axes"`
	Instances []Instance `json:"instances"`
}

func fixed_to_float(x uint32) float64 {
	return math.Round(float64(int32(x))/65536*10000) / 10000
}

func float_to_fixed(x float64) uint32 {
	return uint32(int32(math.Round(x * 65536)))
}

// ParseFvar decodes the contents of an fvar table.
func ParseFvar(data []byte) (*Fvar, error) {
	if len(data) < fvar_header_size {
		return nil, fmt.Errorf("fvar table too short: %d bytes", len(data))
	}
	be := binary.BigEndian
	if major := be.Uint16(data); major != 1 {
		return nil, fmt.Errorf("unsupported fvar table version: %d", major)
	}
	axes_offset := int(be.Uint16(data[4:]))
	axis_count := int(be.Uint16(data[8:]))
	axis_size := int(be.Uint16(data[10:]))
	instance_count := int(be.Uint16(data[12:]))
	instance_size := int(be.Uint16(data[14:]))
	if axis_size < axis_record_size {
		return nil, fmt.Errorf("invalid fvar axis record size: %d", axis_size)
	}
	if instance_count > 0 && instance_size < 4+4*axis_count {
		return nil, fmt.Errorf("invalid fvar instance record size: %d", instance_size)
	}
	end := axes_offset + axis_count*axis_size + instance_count*instance_size
	if axes_offset < fvar_header_size || end > len(data) {
		return nil, fmt.Errorf("fvar records extend beyond the end of the table")
	}
	ans := Fvar{Axes: make([]Axis, axis_count), Instances: make([]Instance, instance_count)}
	pos := axes_offset
	for i := range ans.Axes {
		rec := data[pos : pos+axis_size]
		ans.Axes[i] = Axis{
			Tag:     strings.TrimRight(string(rec[:4]), " "),
			Min:     fixed_to_float(be.Uint32(rec[4:])),
			Default: fixed_to_float(be.Uint32(rec[8:])),
			Max:     fixed_to_float(be.Uint32(rec[12:])),
			Hidden:  be.Uint16(rec[16:])&hidden_axis_flag != 0,
			Name_id: be.Uint16(rec[18:]),
		}
		pos += axis_size
	}
	for i := range ans.Instances {
		rec := data[pos : pos+instance_size]
		inst := Instance{Subfamily_name_id: be.Uint16(rec), Coordinates: make([]float64, axis_count)}
		for j := range inst.Coordinates {
			inst.Coordinates[j] = fixed_to_float(be.Uint32(rec[4+4*j:]))
		}
		if instance_size >= 6+4*axis_count {
			inst.Postscript_name_id = be.Uint16(rec[4+4*axis_count:])
		}
		ans.Instances[i] = inst
		pos += instance_size
	}
	return &ans, nil
}

// Encode is the inverse of ParseFvar. Postscript name ids are written only
// when at least one instance has one.
func (self *Fvar) Encode() []byte {
	be := binary.BigEndian
	with_ps := slices.ContainsFunc(self.Instances, func(i Instance) bool { return i.Postscript_name_id != 0 })
	instance_size := 4 + 4*len(self.Axes)
	if with_ps {
		instance_size += 2
	}
	ans := make([]byte, 0, fvar_header_size+len(self.Axes)*axis_record_size+len(self.Instances)*instance_size)
	ans = be.AppendUint16(ans, 1)
	ans = be.AppendUint16(ans, 0)
	ans = be.AppendUint16(ans, fvar_header_size)
	ans = be.AppendUint16(ans, 2)
	ans = be.AppendUint16(ans, uint16(len(self.Axes)))
	ans = be.AppendUint16(ans, axis_record_size)
	ans = be.AppendUint16(ans, uint16(len(self.Instances)))
	ans = be.AppendUint16(ans, uint16(instance_size))
	for _, a := range self.Axes {
		tag := []byte((a.Tag + "    ")[:4])
		ans = append(ans, tag...)
		ans = be.AppendUint32(ans, float_to_fixed(a.Min))
		ans = be.AppendUint32(ans, float_to_fixed(a.Default))
		ans = be.AppendUint32(ans, float_to_fixed(a.Max))
		var flags uint16
		if a.Hidden {
			flags |= hidden_axis_flag
		}
		ans = be.AppendUint16(ans, flags)
		ans = be.AppendUint16(ans, a.Name_id)
	}
	for _, inst := range self.Instances {
		ans = be.AppendUint16(ans, inst.Subfamily_name_id)
		ans = be.AppendUint16(ans, 0)
		for i := range self.Axes {
			var c float64
			if i < len(inst.Coordinates) {
				c = inst.Coordinates[i]
			}
			ans = be.AppendUint32(ans, float_to_fixed(c))
		}
		if with_ps {
			ans = be.AppendUint16(ans, inst.Postscript_name_id)
		}
	}
	return ans
}

// ReadFvar reads the fvar table from an sfnt font (TrueType or OpenType).
func ReadFvar(r io.ReaderAt) (*Fvar, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, fmt.Errorf("not a valid font file: %w", err)
	}
	if _, found := info.Toc["fvar"]; !found {
		return nil, ErrNotVariable
	}
	data, err := info.ReadTableBytes(r, "fvar")
	if err != nil {
		return nil, err
	}
	return ParseFvar(data)
}

func Open(path string) (*Fvar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ans, err := ReadFvar(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read variation data from %s: %w", path, err)
	}
	return ans, nil
}
