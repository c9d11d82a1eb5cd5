package holiday

import "time"

// nationalRule is a fixed-date holiday recurring every civil year.
type nationalRule struct {
	month  time.Month
	day    int
	name   string
	nameAr string
	days   int
}

var nationalRules = map[string][]nationalRule{
	"SA": {
		{time.February, 22, "Founding Day", "يوم التأسيس", 1},
		{time.September, 23, "National Day", "اليوم الوطني", 1},
	},
	"AE": {
		{time.January, 1, "New Year's Day", "رأس السنة الميلادية", 1},
		{time.December, 1, "Commemoration Day", "يوم الشهيد", 1},
		{time.December, 2, "National Day", "اليوم الوطني", 2},
	},
	"EG": {
		{time.January, 25, "Revolution Day (January 25)", "ثورة 25 يناير", 1},
		{time.April, 25, "Sinai Liberation Day", "عيد تحرير سيناء", 1},
		{time.May, 1, "Labour Day", "عيد العمال", 1},
		{time.June, 30, "June 30 Revolution", "ثورة 30 يونيو", 1},
		{time.July, 23, "Revolution Day (July 23)", "ثورة 23 يوليو", 1},
		{time.October, 6, "Armed Forces Day", "عيد القوات المسلحة", 1},
	},
	"KW": {
		{time.January, 1, "New Year's Day", "رأس السنة الميلادية", 1},
		{time.February, 25, "National Day", "العيد الوطني", 1},
		{time.February, 26, "Liberation Day", "يوم التحرير", 1},
	},
}

// Keys for religious holidays so each country can opt in to the subset it
// observes.
const (
	keyIsraMiraj    = "isra_miraj"
	keyRamadanStart = "ramadan_start"
	keyEidFitr      = "eid_fitr"
	keyArafah       = "arafah"
	keyEidAdha      = "eid_adha"
	keyHijriNewYear = "hijri_new_year"
	keyAshura       = "ashura"
	keyMawlid       = "mawlid"
)

var religiousObserved = map[string]map[string]bool{
	"SA": {
		keyRamadanStart: true,
		keyEidFitr:      true,
		keyArafah:       true,
		keyEidAdha:      true,
	},
	"AE": {
		keyIsraMiraj:    true,
		keyRamadanStart: true,
		keyEidFitr:      true,
		keyArafah:       true,
		keyEidAdha:      true,
		keyHijriNewYear: true,
		keyMawlid:       true,
	},
	"EG": {
		keyRamadanStart: true,
		keyEidFitr:      true,
		keyArafah:       true,
		keyEidAdha:      true,
		keyHijriNewYear: true,
		keyMawlid:       true,
	},
	"KW": {
		keyIsraMiraj:    true,
		keyRamadanStart: true,
		keyEidFitr:      true,
		keyArafah:       true,
		keyEidAdha:      true,
		keyHijriNewYear: true,
		keyAshura:       true,
		keyMawlid:       true,
	},
}

type religiousEntry struct {
	key    string
	date   time.Time
	name   string
	nameAr string
	days   int
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// religiousTable holds observed civil dates per Gregorian year, derived
// from the Umm al-Qura calendar. Years outside this table need a data
// refresh; Holidays flags them with ErrYearNotCovered.
var religiousTable = map[int][]religiousEntry{
	2023: {
		{keyIsraMiraj, d(2023, time.February, 18), "Isra and Miraj", "الإسراء والمعراج", 1},
		{keyRamadanStart, d(2023, time.March, 23), "First day of Ramadan", "أول أيام رمضان", 1},
		{keyEidFitr, d(2023, time.April, 21), "Eid al-Fitr", "عيد الفطر", 3},
		{keyArafah, d(2023, time.June, 27), "Day of Arafah", "يوم عرفة", 1},
		{keyEidAdha, d(2023, time.June, 28), "Eid al-Adha", "عيد الأضحى", 3},
		{keyHijriNewYear, d(2023, time.July, 19), "Hijri New Year", "رأس السنة الهجرية", 1},
		{keyAshura, d(2023, time.July, 28), "Ashura", "عاشوراء", 1},
		{keyMawlid, d(2023, time.September, 27), "Prophet's Birthday", "المولد النبوي", 1},
	},
	2024: {
		{keyIsraMiraj, d(2024, time.February, 7), "Isra and Miraj", "الإسراء والمعراج", 1},
		{keyRamadanStart, d(2024, time.March, 11), "First day of Ramadan", "أول أيام رمضان", 1},
		{keyEidFitr, d(2024, time.April, 10), "Eid al-Fitr", "عيد الفطر", 3},
		{keyArafah, d(2024, time.June, 15), "Day of Arafah", "يوم عرفة", 1},
		{keyEidAdha, d(2024, time.June, 16), "Eid al-Adha", "عيد الأضحى", 3},
		{keyHijriNewYear, d(2024, time.July, 7), "Hijri New Year", "رأس السنة الهجرية", 1},
		{keyAshura, d(2024, time.July, 16), "Ashura", "عاشوراء", 1},
		{keyMawlid, d(2024, time.September, 15), "Prophet's Birthday", "المولد النبوي", 1},
	},
	2025: {
		{keyIsraMiraj, d(2025, time.January, 27), "Isra and Miraj", "الإسراء والمعراج", 1},
		{keyRamadanStart, d(2025, time.March, 1), "First day of Ramadan", "أول أيام رمضان", 1},
		{keyEidFitr, d(2025, time.March, 30), "Eid al-Fitr", "عيد الفطر", 3},
		{keyArafah, d(2025, time.June, 5), "Day of Arafah", "يوم عرفة", 1},
		{keyEidAdha, d(2025, time.June, 6), "Eid al-Adha", "عيد الأضحى", 3},
		{keyHijriNewYear, d(2025, time.June, 26), "Hijri New Year", "رأس السنة الهجرية", 1},
		{keyAshura, d(2025, time.July, 5), "Ashura", "عاشوراء", 1},
		{keyMawlid, d(2025, time.September, 4), "Prophet's Birthday", "المولد النبوي", 1},
	},
}
