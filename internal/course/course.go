// Package course defines the lesson records of the REWIRED 7-Day Reset and
// how their asset URLs are built.
package course

import (
	"strings"
)

// ProductID groups the seven daily lessons.
const ProductID = "7-day-reset"

// AssetBase is the public object-storage host serving lesson assets.
const AssetBase = "https://pub-c6dbcc3c636f459ca30a6067b6dbc758.r2.dev"

// Asset folders under AssetBase.
const (
	VideoDir     = "videos"
	SlideshowDir = "slideshows"
	WorkbookDir  = "workbooks"
)

// Lesson is one day of a course, stored in the lessons table.
type Lesson struct {
	ID              uint   `gorm:"primaryKey"`
	ProductID       string `gorm:"column:product_id;not null;index"`
	DayNumber       int    `gorm:"column:day_number;not null"`
	Title           string `gorm:"column:title;not null"`
	Description     string `gorm:"column:description"`
	VideoURL        string `gorm:"column:video_url"`
	SlideshowURL    string `gorm:"column:slideshow_url"`
	WorkbookURL     string `gorm:"column:workbook_url"`
	DurationMinutes int    `gorm:"column:duration_minutes;not null"`
}

// TableName pins the table name used by gorm.
func (Lesson) TableName() string { return "lessons" }

// AssetURL joins AssetBase, dir and the escaped file name.
func AssetURL(dir, filename string) string {
	return AssetBase + "/" + dir + "/" + EncodeURIComponent(filename)
}

// EncodeURIComponent percent-encodes s the way browsers do for a single URI
// component: only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as they are.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// day holds the source data of one lesson before URLs are built.
type day struct {
	number      int
	title       string
	description string
	video       string
	slideshow   string
	workbook    string
	minutes     int
}

var sevenDayReset = []day{
	{
		number:      1,
		title:       "RECOGNIZE - Understanding Your Patterns",
		description: "Learn to identify your behavioral patterns and understand the root causes of your addiction.",
		video:       "REWIRED DAY 1.mp4",
		slideshow:   "Day_1_RECOGNIZE_-_Understanding_Your_Patterns.pdf",
		workbook:    "1_RECOGNIZE_Workbook.pdf",
		minutes:     45,
	},
	{
		number:      2,
		title:       "ESTABLISH - Safety & Connection",
		description: "Build a foundation of safety and connection to support your recovery journey.",
		video:       "REWIRED_DAY_2.mp4",
		slideshow:   "Day_2_ESTABLISH_-_Safety_&_Connection.pdf",
		workbook:    "2_ESTABLISH_Workbook.pdf",
		minutes:     50,
	},
	{
		number:      3,
		title:       "WORK - Triggers as Teachers",
		description: "Transform your triggers from obstacles into opportunities for growth and healing.",
		video:       "Rewired_Day_3.mp4",
		slideshow:   "Day_3_WORK_-_Triggers_as_Teachers.pdf",
		workbook:    "3_WORK_Workbook.pdf",
		minutes:     55,
	},
	{
		number:      4,
		title:       "INTEGRATE - Building Sustainable Routines",
		description: "Create daily routines and habits that support long-term recovery and well-being.",
		video:       "Rewired_Day_4.mp4",
		slideshow:   "Day_4_INTEGRATE_-_Building_Sustainable_Routines.pdf",
		workbook:    "4_INTEGRATE_Workbook.pdf",
		minutes:     48,
	},
	{
		number:      5,
		title:       "RELEASE - Letting Go of Shame",
		description: "Break free from shame and self-judgment to embrace self-compassion and healing.",
		video:       "Welcome_everyone._This_is_Day_5_of_The_REWIRED_7-D.mp4",
		slideshow:   "Day_5_RELEASE_-_Letting_Go_of_Shame (1).pdf",
		workbook:    "5_RELEASE_Workbook.pdf",
		minutes:     52,
	},
	{
		number:      6,
		title:       "EMBRACE - Your New Identity",
		description: "Step into your new identity as someone who is healing, growing, and thriving.",
		video:       "Welcome_everyone._This_is_Day_6_of_The_REWIRED_7-D.mp4",
		slideshow:   "Day_6_EMBRACE_-_Your_New_Identity.pdf",
		workbook:    "6_EMBRACE_Workbook.pdf",
		minutes:     47,
	},
	{
		number:      7,
		title:       "DISCOVER - Your Purpose & Path Forward",
		description: "Find your purpose and create a clear path forward for sustained recovery and growth.",
		video:       "Welcome_everyone._This_is_Day_7_of_The_REWIRED_7-D.mp4",
		slideshow:   "Day_7_DISCOVER_-_Your_Purpose_&_Path_Forward.pdf",
		workbook:    "7_DISCOVER_Workbook.pdf",
		minutes:     60,
	},
}

// SevenDayReset returns the lessons of the 7-Day Reset in day order.
// Each call returns a fresh slice.
func SevenDayReset() []Lesson {
	lessons := make([]Lesson, len(sevenDayReset))
	for i, d := range sevenDayReset {
		lessons[i] = Lesson{
			ProductID:       ProductID,
			DayNumber:       d.number,
			Title:           d.title,
			Description:     d.description,
			VideoURL:        AssetURL(VideoDir, d.video),
			SlideshowURL:    AssetURL(SlideshowDir, d.slideshow),
			WorkbookURL:     AssetURL(WorkbookDir, d.workbook),
			DurationMinutes: d.minutes,
		}
	}
	return lessons
}

// TotalMinutes sums the durations of lessons.
func TotalMinutes(lessons []Lesson) int {
	var total int
	for _, l := range lessons {
		total += l.DurationMinutes
	}
	return total
}
