package utils

import (
	"log"
	"time"
)

var (
	BangkokLocation *time.Location
)

func init() {
	var err error
	BangkokLocation, err = time.LoadLocation("Asia/Bangkok")
	if err != nil {
		log.Printf("Failed to load Asia/Bangkok timezone: %v", err)
		BangkokLocation = time.FixedZone("ICT", 7*60*60)
	}
}

func NowBangkok() time.Time {
	return time.Now().In(BangkokLocation)
}

func TodayBangkok() time.Time {
	now := NowBangkok()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, BangkokLocation)
}

func ToBangkok(t time.Time) time.Time {
	return t.In(BangkokLocation)
}

func ParseBangkok(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, BangkokLocation)
}
