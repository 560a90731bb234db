package ist7920

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want []byte
	}{
		{"AYAddress", AYAddress(3), []byte{0x01, 0x03}},
		{"AYAddress masked", AYAddress(0xFF), []byte{0x01, 0x1F}},
		{"Bias", Bias(16), []byte{0x30, 0x10}},
		{"Bias masked", Bias(0xFF), []byte{0x30, 0x3F}},
		{"VoltageClock", VoltageClock(0x3F), []byte{0x31, 0x3F}},
		{"VoltageClock masked", VoltageClock(0xC1), []byte{0x31, 0x01}},
		{"PowerControl", PowerControl(0x2F), []byte{0x33, 0x2F}},
		{"PowerControl unmasked", PowerControl(0xFF), []byte{0x33, 0xFF}},
		{"DisplayOn off", DisplayOn(false), []byte{0x3C}},
		{"DisplayOn on", DisplayOn(true), []byte{0x3D}},
		{"StartLine", StartLine(64), []byte{0x40, 0x40}},
		{"DisplayControl none", DisplayControl{}, []byte{0x60}},
		{"DisplayControl SHL", DisplayControl{SHL: true}, []byte{0x68}},
		{"DisplayControl ADC", DisplayControl{ADC: true}, []byte{0x64}},
		{"DisplayControl EON", DisplayControl{EON: true}, []byte{0x62}},
		{"DisplayControl REV", DisplayControl{REV: true}, []byte{0x61}},
		{"DisplayControl all", DisplayControl{true, true, true, true}, []byte{0x6F}},
		{"AYWindow", AYWindow{0, 15}, []byte{0x74, 0x00, 0x0F}},
		{"AYWindow masked", AYWindow{0xE1, 0xFF}, []byte{0x74, 0x01, 0x1F}},
		{"AXWindow", AXWindow{0, 127}, []byte{0x75, 0x00, 0x7F}},
		{"AXWindow masked", AXWindow{0x81, 0xFF}, []byte{0x75, 0x01, 0x7F}},
		{"SWReset", SWReset{}, []byte{0x76}},
		{"Duty", Duty(128), []byte{0x90, 0x80}},
		{"Contrast", Contrast(110), []byte{0xB1, 0x6E}},
		{"AXAddress", AXAddress(100), []byte{0xC0, 0x64}},
		{"AXAddress masked", AXAddress(0xFF), []byte{0xC0, 0x7F}},
		{"Booster VddX2", VddX2, []byte{0xFC}},
		{"Booster VddX3", VddX3, []byte{0xFD}},
		{"Booster VddX4", VddX4, []byte{0xFE}},
		{"Booster VddX5", VddX5, []byte{0xFF}},
		{"Booster masked", Booster(0x05), []byte{0xFD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.cmd)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % X, want % X", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestEncodeTrailingBytesZero(t *testing.T) {
	cmds := []Command{
		AYAddress(0xFF), Bias(0xFF), VoltageClock(0xFF), PowerControl(0xFF),
		DisplayOn(true), StartLine(0xFF), DisplayControl{true, true, true, true},
		AYWindow{0xFF, 0xFF}, AXWindow{0xFF, 0xFF}, SWReset{}, Duty(0xFF),
		Contrast(0xFF), AXAddress(0xFF), VddX5,
	}
	for _, c := range cmds {
		b, n := c.encode()
		for i := n; i < len(b); i++ {
			if b[i] != 0 {
				t.Errorf("%v: byte %d beyond length %d = 0x%02X, want 0", c, i, n, b[i])
			}
		}
	}
}

func TestSend(t *testing.T) {
	rec := &recorder{}
	if err := Send(rec, AXWindow{0, 127}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	rec.expect(t, cmdEvent(0x75, 0x00, 0x7F))
}

func TestSendError(t *testing.T) {
	busErr := errors.New("bus fault")
	rec := &recorder{failCmdAt: 1, err: busErr}

	if err := Send(rec, SWReset{}); err != busErr {
		t.Errorf("Send() error = %v, want %v unchanged", err, busErr)
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{AYWindow{0, 15}, "AYWindow(0,15)"},
		{AXAddress(5), "AXAddress(5)"},
		{DisplayOn(true), "DisplayOn(true)"},
		{DisplayControl{ADC: true}, "DisplayControl(false,true,false,false)"},
		{SWReset{}, "SWReset"},
		{VddX3, "Booster(VddX3)"},
		{PowerControl(0x2C), "PowerControl(0x2C)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
