// Package quotes supplies the daily motivational quote shown on the
// dashboard. The pick is deterministic per calendar day so it stays stable
// across refreshes.
package quotes

import (
	"time"
)

type Quote struct {
	Text   string
	Author string
}

var all = []Quote{
	{"The happiness of your life depends upon the quality of your thoughts.", "Marcus Aurelius"},
	{"Waste no more time arguing about what a good man should be. Be one.", "Marcus Aurelius"},
	{"It is not death that a man should fear, but he should fear never beginning to live.", "Marcus Aurelius"},
	{"Accept the things to which fate binds you, and love the people with whom fate brings you together.", "Marcus Aurelius"},
	{"The best revenge is not to be like your enemy.", "Marcus Aurelius"},
	{"If you are distressed by anything external, the pain is not due to the thing itself, but to your estimate of it; and this you have the power to revoke at any moment.", "Marcus Aurelius"},
	{"The impediment to action advances action. What stands in the way becomes the way.", "Marcus Aurelius"},
	{"Very little is needed to make a happy life; it is all within yourself, in your way of thinking.", "Marcus Aurelius"},
	{"The soul becomes dyed with the color of its thoughts.", "Marcus Aurelius"},
	{"He who has a why to live can bear almost any how.", "Friedrich Nietzsche"},
	{"In the midst of chaos, there is also opportunity.", "Sun Tzu"},
	{"The mind is everything. What you think you become.", "Buddha"},
	{"Happiness is not something ready-made. It comes from your own actions.", "Dalai Lama"},
	{"The greatest glory in living lies not in never falling, but in rising every time we fall.", "Nelson Mandela"},
	{"Life is 10% what happens to you and 90% how you react to it.", "Charles R. Swindoll"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
	{"What you get by achieving your goals is not as important as what you become by achieving your goals.", "Zig Ziglar"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only limit to our realization of tomorrow will be our doubts of today.", "Franklin D. Roosevelt"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"The journey of a thousand miles begins with one step.", "Lao Tzu"},
	{"Patience is not the ability to wait, but the ability to keep a good attitude while waiting.", "Joyce Meyer"},
	{"The more you practice, the better you get. The better you get, the more you like it. The more you like it, the more you do it.", "Althea Gibson"},
	{"Excellence is never an accident. It is always the result of high intention, sincere effort, and intelligent execution.", "Aristotle"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Success is walking from failure to failure with no loss of enthusiasm.", "Winston Churchill"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"},
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// OfDay returns the quote for the given day. The same date always yields the
// same quote.
func OfDay(day time.Time) Quote {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	days := int(midnight.Sub(epoch).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return all[days%len(all)]
}

// All returns every quote in rotation order.
func All() []Quote {
	out := make([]Quote, len(all))
	copy(out, all)
	return out
}
