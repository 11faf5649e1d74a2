package models

// PrayerTimes is the day's prayer schedule with its Gregorian and Hijri
// dates, as returned by the upstream timings API.
type PrayerTimes struct {
	Timings       map[string]string `json:"timings"`
	GregorianDate string            `json:"gregorian_date"`
	HijriDate     string            `json:"hijri_date"`
	Method        int               `json:"method"`
}

// QuranChapter is a chapter (surah) summary from the Quran-text API.
type QuranChapter struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"english_name"`
	NumberOfAyahs  int    `json:"number_of_ayahs"`
	RevelationType string `json:"revelation_type"`
}

// QuranVerse is one verse of a chapter.
type QuranVerse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// QuranChapterDetail is a chapter with its verses.
type QuranChapterDetail struct {
	QuranChapter
	Verses []QuranVerse `json:"verses"`
}
