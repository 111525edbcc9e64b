package css

import "testing"

func TestParseInlineStyle_SingleProperty(t *testing.T) {
	style := ParseInlineStyle("display: inline")
	value, ok := style.Get("display")
	if !ok || value != "inline" {
		t.Error("expected display='inline'")
	}
}

func TestParseInlineStyle_MultipleProperties(t *testing.T) {
	style := ParseInlineStyle("height: 50px; width: 100px")
	height, _ := style.Get("height")
	width, _ := style.Get("width")
	if height != "50px" || width != "100px" {
		t.Error("expected both properties to parse")
	}
}

func TestParseInlineStyle_SkipsMalformedDeclarations(t *testing.T) {
	style := ParseInlineStyle("width 100px;; HEIGHT: 20px ;")
	if _, ok := style.Get("width"); ok {
		t.Error("expected declaration without colon to be skipped")
	}
	height, ok := style.GetLength("height")
	if !ok || height != 20 {
		t.Errorf("expected height=20, got %f", height)
	}
}

func TestGetLength_PixelValue(t *testing.T) {
	style := ParseInlineStyle("width: 100px")
	width, ok := style.GetLength("width")
	if !ok || width != 100.0 {
		t.Errorf("expected width=100.0, got %f", width)
	}
}

func TestParseLength_UnitlessAndInvalid(t *testing.T) {
	if v, ok := ParseLength(" 12.5 "); !ok || v != 12.5 {
		t.Errorf("expected 12.5, got %f (ok=%v)", v, ok)
	}
	if _, ok := ParseLength("auto"); ok {
		t.Error("expected auto to be rejected")
	}
}

func TestParseInlineStyle_MarginShorthand(t *testing.T) {
	style := ParseInlineStyle("margin: 10px")
	margin := style.GetMargin()

	if margin.Top != 10 || margin.Right != 10 || margin.Bottom != 10 || margin.Left != 10 {
		t.Errorf("expected all margins to be 10, got %+v", margin)
	}
}

func TestParseInlineStyle_MarginTwoValues(t *testing.T) {
	style := ParseInlineStyle("margin: 10px 20px")
	margin := style.GetMargin()

	if margin.Top != 10 || margin.Bottom != 10 {
		t.Errorf("expected top/bottom margins to be 10, got %+v", margin)
	}
	if margin.Right != 20 || margin.Left != 20 {
		t.Errorf("expected left/right margins to be 20, got %+v", margin)
	}
}

func TestParseInlineStyle_MarginThreeValues(t *testing.T) {
	style := ParseInlineStyle("margin: 10px 20px 30px")
	margin := style.GetMargin()

	if margin.Top != 10 || margin.Right != 20 || margin.Bottom != 30 || margin.Left != 20 {
		t.Errorf("expected margins 10,20,30,20, got %+v", margin)
	}
}

func TestParseInlineStyle_MarginFourValues(t *testing.T) {
	style := ParseInlineStyle("margin: 10px 20px 30px 40px")
	margin := style.GetMargin()

	if margin.Top != 10 || margin.Right != 20 || margin.Bottom != 30 || margin.Left != 40 {
		t.Errorf("expected margins 10,20,30,40, got %+v", margin)
	}
}

func TestParseInlineStyle_PaddingShorthand(t *testing.T) {
	style := ParseInlineStyle("padding: 15px")
	padding := style.GetPadding()

	if padding.Top != 15 || padding.Right != 15 || padding.Bottom != 15 || padding.Left != 15 {
		t.Errorf("expected all padding to be 15, got %+v", padding)
	}
}

func TestParseInlineStyle_IndividualMargins(t *testing.T) {
	style := ParseInlineStyle("margin-top: 5px; margin-left: 10px")
	margin := style.GetMargin()

	if margin.Top != 5 {
		t.Errorf("expected margin-top 5, got %f", margin.Top)
	}
	if margin.Left != 10 {
		t.Errorf("expected margin-left 10, got %f", margin.Left)
	}
	if margin.Right != 0 || margin.Bottom != 0 {
		t.Errorf("expected other margins to be 0, got %+v", margin)
	}
}

func TestParseInlineStyle_CombinedBoxModel(t *testing.T) {
	style := ParseInlineStyle("margin: 10px; padding: 20px")

	margin := style.GetMargin()
	if margin.Top != 10 {
		t.Errorf("expected margin 10, got %+v", margin)
	}

	padding := style.GetPadding()
	if padding.Top != 20 {
		t.Errorf("expected padding 20, got %+v", padding)
	}
}

func TestGetDisplay(t *testing.T) {
	if d := ParseInlineStyle("").GetDisplay(); d != DisplayBlock {
		t.Errorf("expected default display block, got %s", d)
	}
	if d := ParseInlineStyle("display: inline").GetDisplay(); d != DisplayInline {
		t.Errorf("expected display inline, got %s", d)
	}
	if d := ParseInlineStyle("display: flex").GetDisplay(); d != DisplayBlock {
		t.Errorf("expected unsupported display to fall back to block, got %s", d)
	}
	if _, ok := ParseDisplay("grid"); ok {
		t.Error("expected grid to be rejected")
	}
}
