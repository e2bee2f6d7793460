package trends

// Catalog holds the display lookup tables the analyzers annotate their
// output with. It is built once and injected, so tests can swap in a
// reduced table instead of depending on the production labels.
type Catalog struct {
	// emoji tag -> human readable label
	TagLabels map[string]string
	// activity category -> chart appearance (Thai and English keys coexist;
	// old rows wrote English category names)
	Categories      map[string]CategoryStyle
	DefaultCategory CategoryStyle
	// category keys treated as the protected health category
	HealthKeys []string
	// sentinel used when an activity has no category
	OtherCategory string
	// activity status -> chart appearance
	Statuses map[string]StatusStyle
}

type CategoryStyle struct {
	Label string
	Emoji string
	Color string
}

type StatusStyle struct {
	Label string
	Color string
}

func (c Catalog) TagLabel(tag string) string {
	if label, ok := c.TagLabels[tag]; ok {
		return label
	}
	// unknown tags are already human readable (or a one-off emoji); pass through
	return tag
}

func (c Catalog) CategoryStyle(category string) CategoryStyle {
	if style, ok := c.Categories[category]; ok {
		return style
	}
	style := c.DefaultCategory
	if category != "" {
		style.Label = category
	}
	return style
}

func (c Catalog) CategoryLabel(category string) string {
	return c.CategoryStyle(category).Label
}

func (c Catalog) IsHealthCategory(category string) bool {
	for _, key := range c.HealthKeys {
		if category == key {
			return true
		}
	}
	return false
}

// DefaultCatalog mirrors the client's constants so the chart colors and
// labels stay in sync with what the app renders.
func DefaultCatalog() Catalog {
	return Catalog{
		TagLabels: map[string]string{
			"😊":  "สุขสมหวัง",
			"🚀":  "มีประสิทธิผล",
			"💪":  "แข็งแรง",
			"🙏":  "ขอบคุณ",
			"😄":  "ปลื้มใจ",
			"🌟":  "ยอดเยี่ยม",
			"😫":  "เครียด",
			"😴":  "เหนื่อย",
			"😣":  "ท้อ",
			"😤":  "หงุดหงิด",
			"😐":  "เฉยๆ",
			"🤔":  "คิดมาก",
			"🤷‍♂️": "ไม่แน่ใจ",
			"🤯":  "ยุ่ง",
		},
		Categories: map[string]CategoryStyle{
			"เรียน":       {Label: "เรียน", Color: "#00bcd4", Emoji: "📚"},
			"ทำงาน":       {Label: "ทำงาน", Color: "#2196f3", Emoji: "💼"},
			"ออกกำลังกาย": {Label: "ออกกำลังกาย", Color: "#4caf50", Emoji: "🏋️"},
			"เรื่องบ้าน":  {Label: "เรื่องบ้าน", Color: "#ff9800", Emoji: "🏠"},
			"ส่วนตัว":     {Label: "ส่วนตัว", Color: "#9c27b0", Emoji: "👤"},
			"สุขภาพ":      {Label: "สุขภาพ", Color: "#e91e63", Emoji: "❤️‍🩹"},
			// legacy English keys
			"work":     {Label: "ทำงาน", Color: "#2196f3", Emoji: "💼"},
			"personal": {Label: "ส่วนตัว", Color: "#9c27b0", Emoji: "👤"},
			"health":   {Label: "สุขภาพ", Color: "#4caf50", Emoji: "❤️‍🩹"},
			"social":   {Label: "สังคม", Color: "#ff9800", Emoji: "👥"},
			"study":    {Label: "เรียน", Color: "#00bcd4", Emoji: "📚"},
			"hobby":    {Label: "งานอดิเรก", Color: "#e91e63", Emoji: "🎨"},
			"อื่นๆ":    {Label: "อื่นๆ", Color: "#9e9e9e", Emoji: "📋"},
			"other":    {Label: "อื่นๆ", Color: "#9e9e9e", Emoji: "📋"},
		},
		DefaultCategory: CategoryStyle{Label: "อื่นๆ", Emoji: "📋", Color: "#9e9e9e"},
		HealthKeys:      []string{"health", "สุขภาพ"},
		OtherCategory:   "อื่นๆ",
		Statuses: map[string]StatusStyle{
			"done":      {Label: "เสร็จแล้ว", Color: "#52c41a"},
			"normal":    {Label: "ยังไม่เริ่ม", Color: "#595959"},
			"urgent":    {Label: "กำลังทำ", Color: "#faad14"},
			"cancelled": {Label: "ยกเลิก", Color: "#ff4d4f"},
		},
	}
}
