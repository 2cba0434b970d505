package argsparser

import (
	"net/netip"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestBuiltinConverters(t *testing.T) {
	c := qt.New(t)
	v, err := Int("12")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, 12)
	v, err = Float("0.5")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, 0.5)
	v, err = Bool("true")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, true)
	v, err = Duration("1m")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, time.Minute)
	_, err = Int("twelve")
	c.Check(err, qt.IsNotNil)
}

func TestUnmarshal(t *testing.T) {
	c := qt.New(t)
	v, err := Unmarshal[uint8]()("0x10")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, uint8(16))
	v, err = Unmarshal[int32]()("-7")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, int32(-7))
	v, err = Unmarshal[time.Duration]()("2s")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, 2*time.Second)
	v, err = Unmarshal[netip.Addr]()("10.0.0.1")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.Equals, netip.MustParseAddr("10.0.0.1"))
	v, err = Unmarshal[[]string]()("a")
	c.Assert(err, qt.IsNil)
	c.Check(v, qt.DeepEquals, []string{"a"})
	_, err = Unmarshal[uint8]()("300")
	c.Check(err, qt.ErrorMatches, `unmarshalling "300" into uint8: .*`)
	_, err = Unmarshal[chan int]()("x")
	c.Check(err, qt.ErrorMatches, `.*unhandled target type chan int`)
}

func TestOneOf(t *testing.T) {
	c := qt.New(t)
	v := OneOf("red", "green")
	c.Check(v("red"), qt.IsNil)
	c.Check(v("blue"), qt.ErrorMatches, `invalid choice "blue": red\|green`)
}

func TestChoices(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	level := Must(p.RegisterOption("level", true, Convert(Choices(map[string]int{
		"low":  1,
		"high": 3,
		"mid":  2,
	}))))
	r, err := p.Parse([]string{"--level", "mid"})
	c.Assert(err, qt.IsNil)
	v, _ := Value[int](r, level)
	c.Check(v, qt.Equals, 2)
	r, err = p.Parse([]string{"--level", "max"})
	c.Check(err, qt.ErrorMatches, `conversion failed "max": invalid choice "max": high\|low\|mid`)
	_, ok := r.Value(level)
	c.Check(ok, qt.IsFalse)
}
