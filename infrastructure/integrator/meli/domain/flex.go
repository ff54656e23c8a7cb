package melidomain

import (
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// FlexString aceita string ou número no JSON. Zero numérico, null e booleanos viram "".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return err
	}

	*s = FlexString(flexText(v))
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt aceita número ou string numérica. Qualquer outra coisa vira 0.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return err
	}

	*i = FlexInt(flexInt(v))
	return nil
}

func (i FlexInt) Int64() int64 {
	return int64(i)
}

// Phone representa receiver_phone, que chega como texto livre ou como objeto
type Phone struct {
	Text      string
	AreaCode  FlexString
	Number    FlexString
	Extension FlexString
}

func (p *Phone) UnmarshalJSON(b []byte) error {
	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return err
	}

	switch v.Type() {
	case fastjson.TypeString:
		p.Text = flexText(v)
	case fastjson.TypeObject:
		p.AreaCode = FlexString(flexText(v.Get("area_code")))
		p.Number = FlexString(flexText(v.Get("number")))
		p.Extension = FlexString(flexText(v.Get("extension")))
	}

	return nil
}

// Format devolve o texto livre quando existir, senão junta as partes não vazias com espaço
func (p *Phone) Format() *string {
	if p == nil {
		return nil
	}

	if p.Text != "" {
		text := p.Text
		return &text
	}

	parts := make([]string, 0, 3)
	for _, part := range []FlexString{p.AreaCode, p.Number, p.Extension} {
		if part != "" {
			parts = append(parts, part.String())
		}
	}

	if len(parts) == 0 {
		return nil
	}

	phone := strings.Join(parts, " ")
	return &phone
}

func flexText(v *fastjson.Value) string {
	if v == nil {
		return ""
	}

	switch v.Type() {
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return ""
		}
		return string(b)
	case fastjson.TypeNumber:
		if v.GetFloat64() == 0 {
			return ""
		}
		// números preservam a representação original
		return v.String()
	}

	return ""
}

func flexInt(v *fastjson.Value) int64 {
	if v == nil {
		return 0
	}

	switch v.Type() {
	case fastjson.TypeNumber:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return 0
		}
		n, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	return 0
}
