package validation

import (
	"testing"

	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

func validInfo() *model.SubscriberInfo {
	return &model.SubscriberInfo{
		Name:     "alice",
		IMSI:     "IMSI001010000000001",
		AuthKey:  "8baf473f2f8fd09487cccbd7097c6862",
		AuthOpc:  "8e27b6af0e692e750f32667a3b14605d",
		State:    model.StateActive,
		DataPlan: "default",
		APNs:     []string{"internet"},
	}
}

func TestValidateSubscriberInfo(t *testing.T) {
	known := map[string]*model.Subscriber{
		"IMSI001010000000099": {ID: "IMSI001010000000099"},
	}

	tests := []struct {
		name   string
		modify func(*model.SubscriberInfo)
		want   string
	}{
		{
			name:   "valid",
			modify: func(*model.SubscriberInfo) {},
			want:   "",
		},
		{
			name:   "IMSI with 10 digits",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "IMSI1234567890" },
			want:   "",
		},
		{
			name:   "IMSI with 15 digits",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "IMSI123456789012345" },
			want:   "",
		},
		{
			name:   "IMSI without prefix",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "12345" },
			want:   MsgIMSIInvalid,
		},
		{
			name:   "IMSI with 9 digits",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "IMSI123456789" },
			want:   MsgIMSIInvalid,
		},
		{
			name:   "IMSI with 16 digits",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "IMSI1234567890123456" },
			want:   MsgIMSIInvalid,
		},
		{
			name:   "lower case prefix",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "imsi1234567890" },
			want:   MsgIMSIInvalid,
		},
		{
			name:   "IMSI already exists",
			modify: func(i *model.SubscriberInfo) { i.IMSI = "IMSI001010000000099" },
			want:   MsgIMSIExists,
		},
		{
			name: "IMSI already exists takes precedence over bad hex",
			modify: func(i *model.SubscriberInfo) {
				i.IMSI = "IMSI001010000000099"
				i.AuthKey = "zz"
			},
			want: MsgIMSIExists,
		},
		{
			name:   "invalid auth key",
			modify: func(i *model.SubscriberInfo) { i.AuthKey = "zz" },
			want:   MsgAuthKeyInvalid,
		},
		{
			name:   "empty auth key",
			modify: func(i *model.SubscriberInfo) { i.AuthKey = "" },
			want:   "",
		},
		{
			name: "invalid auth key reported before invalid opc",
			modify: func(i *model.SubscriberInfo) {
				i.AuthKey = "zz"
				i.AuthOpc = "yy"
			},
			want: MsgAuthKeyInvalid,
		},
		{
			name:   "invalid auth opc",
			modify: func(i *model.SubscriberInfo) { i.AuthOpc = "not-hex" },
			want:   MsgAuthOpcInvalid,
		},
		{
			name:   "empty auth opc",
			modify: func(i *model.SubscriberInfo) { i.AuthOpc = "" },
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.modify(info)
			if got := ValidateSubscriberInfo(info, known); got != tt.want {
				t.Errorf("ValidateSubscriberInfo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSubscriberInfo_NilKnown(t *testing.T) {
	if got := ValidateSubscriberInfo(validInfo(), nil); got != "" {
		t.Errorf("ValidateSubscriberInfo(nil known) = %q, want empty", got)
	}
}

func TestValidateOptionalHex(t *testing.T) {
	if got := ValidateOptionalHex("", MsgEditAuthOpcInvalid); got != "" {
		t.Errorf("empty value = %q, want empty", got)
	}
	if got := ValidateOptionalHex("8e27b6af0e692e750f32667a3b14605d", MsgEditAuthOpcInvalid); got != "" {
		t.Errorf("valid hex = %q, want empty", got)
	}
	if got := ValidateOptionalHex("zz", MsgEditAuthOpcInvalid); got != "auth_opc is not a valid hex " {
		t.Errorf("invalid hex = %q", got)
	}
}

func TestMessages(t *testing.T) {
	// 利用者向け文言は変更しないこと
	tests := map[string]string{
		MsgIMSIInvalid:        "imsi invalid, should match '^(IMSId{10,15})$'",
		MsgIMSIExists:         "imsi already exists",
		MsgAuthKeyInvalid:     "auth key is not a valid hex",
		MsgAuthOpcInvalid:     "auth opc is not a valid hex",
		MsgEditAuthKeyInvalid: "auth_key is not a valid hex ",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("message = %q, want %q", got, want)
		}
	}
}
