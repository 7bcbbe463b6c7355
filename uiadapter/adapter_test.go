package uiadapter_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/securecodex/cityquest/uiadapter"
	mock_uiadapter "github.com/securecodex/cityquest/uiadapter/mock"
)

// overlay lines reach the front end padded to one uniform width.
func TestOutputPortOverlayPadding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := mock_uiadapter.NewMockUI(ctrl)
	ui.EXPECT().ShowOverlay("box", gomock.Any()).DoAndReturn(
		func(id string, lines []string) error {
			if len(lines) != 2 {
				t.Fatalf("lines = %q", lines)
			}
			if len(lines[0]) != len(lines[1]) {
				t.Errorf("lines not padded to uniform width: %q", lines)
			}
			return nil
		})
	ui.EXPECT().Sync().Return(nil)

	ad := uiadapter.New(ui)
	if err := ad.ShowOverlay("box", []string{"a", "long line"}); err != nil {
		t.Fatal(err)
	}
}

func TestOutputPortNewPageSyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := mock_uiadapter.NewMockUI(ctrl)
	gomock.InOrder(
		ui.EXPECT().NewPage().Return(nil),
		ui.EXPECT().Sync().Return(nil),
	)

	ad := uiadapter.New(ui)
	if err := ad.NewPage(); err != nil {
		t.Fatal(err)
	}
}

func TestOutputPortForwarding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := mock_uiadapter.NewMockUI(ctrl)
	ui.EXPECT().DrawBubble("barista", "hello").Return(nil)
	ui.EXPECT().SetStatus(100, 599, false).Return(nil)
	ui.EXPECT().SetPlayerPos(1180.0, 350.0).Return(nil)
	ui.EXPECT().ReadLine("PIN: ").Return("1234", nil)

	ad := uiadapter.New(ui)
	if err := ad.DrawBubble("barista", "hello"); err != nil {
		t.Fatal(err)
	}
	if err := ad.SetStatus(100, 599, false); err != nil {
		t.Fatal(err)
	}
	if err := ad.SetPlayerPos(1180, 350); err != nil {
		t.Fatal(err)
	}
	line, err := ad.ReadLine("PIN: ")
	if err != nil {
		t.Fatal(err)
	}
	if line != "1234" {
		t.Errorf("ReadLine() = %q", line)
	}
}
