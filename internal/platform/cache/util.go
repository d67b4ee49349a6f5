package cache

import (
	"time"
)

// refreshHour は市場価格が更新されるインド標準時の時刻です。
const refreshHour = 8

// istFallback はtzdataが無い環境で使うインド標準時（UTC+5:30）です。
var istFallback = time.FixedZone("IST", 5*60*60+30*60)

// TimeUntilNext8AM は次の午前8時（インド標準時）までの期間を返します。
func TimeUntilNext8AM() time.Duration {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = istFallback
	}
	return timeUntilNext(time.Now(), loc, refreshHour)
}

// timeUntilNext は now から次の hour 時ちょうどまでの期間を返します。常に正の値です。
func timeUntilNext(now time.Time, loc *time.Location, hour int) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// ちょうどその時刻の場合も翌日にする（TTL 0 はRedisで無期限になる）
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
