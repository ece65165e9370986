package catalog

// seedWords is the embedded starter vocabulary. IDs are stable slugs so
// progress records survive across runs.
var seedWords = []Word{
	// Family & People
	{ID: "family", English: "family", Russian: "семья", Category: "family", Level: 1, Phonetic: "/ˈfæməli/", Example: "I love my family."},
	{ID: "mother", English: "mother", Russian: "мать", Category: "family", Level: 1, Phonetic: "/ˈmʌðər/", Example: "My mother is kind."},
	{ID: "father", English: "father", Russian: "отец", Category: "family", Level: 1, Phonetic: "/ˈfɑːðər/", Example: "My father works hard."},
	{ID: "children", English: "children", Russian: "дети", Category: "family", Level: 1, Phonetic: "/ˈtʃɪldrən/", Example: "The children are playing."},
	{ID: "friend", English: "friend", Russian: "друг", Category: "family", Level: 1, Phonetic: "/frend/", Example: "She is my best friend."},

	// Food & Cooking
	{ID: "food", English: "food", Russian: "еда", Category: "food", Level: 1, Phonetic: "/fuːd/", Example: "I like healthy food."},
	{ID: "breakfast", English: "breakfast", Russian: "завтрак", Category: "food", Level: 1, Phonetic: "/ˈbrekfəst/", Example: "I eat breakfast every morning."},
	{ID: "dinner", English: "dinner", Russian: "ужин", Category: "food", Level: 1, Phonetic: "/ˈdɪnər/", Example: "We have dinner at 7 PM."},
	{ID: "vegetable", English: "vegetable", Russian: "овощ", Category: "food", Level: 2, Phonetic: "/ˈvedʒtəbəl/", Example: "Carrots are vegetables."},
	{ID: "restaurant", English: "restaurant", Russian: "ресторан", Category: "food", Level: 2, Phonetic: "/ˈrestərɑːnt/", Example: "Let's go to a restaurant."},

	// Travel & Places
	{ID: "travel", English: "travel", Russian: "путешествовать", Category: "travel", Level: 2, Phonetic: "/ˈtrævəl/", Example: "I love to travel."},
	{ID: "hotel", English: "hotel", Russian: "отель", Category: "travel", Level: 1, Phonetic: "/hoʊˈtel/", Example: "We stayed at a nice hotel."},
	{ID: "airport", English: "airport", Russian: "аэропорт", Category: "travel", Level: 2, Phonetic: "/ˈerpɔːrt/", Example: "The airplane is at the airport."},
	{ID: "vacation", English: "vacation", Russian: "отпуск", Category: "travel", Level: 2, Phonetic: "/veɪˈkeɪʃən/", Example: "I'm going on vacation next week."},
	{ID: "destination", English: "destination", Russian: "место назначения", Category: "travel", Level: 3, Phonetic: "/ˌdestɪˈneɪʃən/", Example: "Paris is my favorite destination."},

	// Work & Business
	{ID: "work", English: "work", Russian: "работа", Category: "work", Level: 1, Phonetic: "/wɜːrk/", Example: "I go to work every day."},
	{ID: "job", English: "job", Russian: "работа", Category: "work", Level: 1, Phonetic: "/dʒɑːb/", Example: "I have a good job."},
	{ID: "office", English: "office", Russian: "офис", Category: "work", Level: 1, Phonetic: "/ˈɔːfɪs/", Example: "My office is downtown."},
	{ID: "meeting", English: "meeting", Russian: "встреча", Category: "work", Level: 2, Phonetic: "/ˈmiːtɪŋ/", Example: "We have a meeting at 2 PM."},
	{ID: "salary", English: "salary", Russian: "зарплата", Category: "work", Level: 2, Phonetic: "/ˈsæləri/", Example: "I'm happy with my salary."},

	// Basic Vocabulary
	{ID: "hello", English: "hello", Russian: "привет", Category: "basic", Level: 1, Phonetic: "/həˈloʊ/", Example: "Hello, how are you?"},
	{ID: "goodbye", English: "goodbye", Russian: "до свидания", Category: "basic", Level: 1, Phonetic: "/ɡʊdˈbaɪ/", Example: "Goodbye, see you tomorrow!"},
	{ID: "please", English: "please", Russian: "пожалуйста", Category: "basic", Level: 1, Phonetic: "/pliːz/", Example: "Can you help me, please?"},
	{ID: "thank-you", English: "thank you", Russian: "спасибо", Category: "basic", Level: 1, Phonetic: "/θæŋk juː/", Example: "Thank you for your help."},
	{ID: "beautiful", English: "beautiful", Russian: "красивый", Category: "basic", Level: 2, Phonetic: "/ˈbjuːtɪfəl/", Example: "The sunset is beautiful."},
	{ID: "important", English: "important", Russian: "важный", Category: "basic", Level: 2, Phonetic: "/ɪmˈpɔːrtənt/", Example: "This is very important."},
	{ID: "understand", English: "understand", Russian: "понимать", Category: "basic", Level: 2, Phonetic: "/ˌʌndərˈstænd/", Example: "Do you understand me?"},
	{ID: "knowledge", English: "knowledge", Russian: "знание", Category: "basic", Level: 3, Phonetic: "/ˈnɑːlɪdʒ/", Example: "Knowledge is power."},
}
