package content

// defaultContent — запись по умолчанию для знаков, не описанных в таблице,
// и для незаполненных полей частичных записей. Генерик-тексты исходного
// генератора.
var defaultContent = SignContent{
	TraitPhrase: "unique essence",
	Essence: "Your core identity is shaped by this powerful placement. " +
		"Your sun sign represents your ego, your life force, and the essential " +
		"nature of who you are at the deepest level.",
	SecretWound: "A quiet fear of being truly seen keeps part of your power hidden.",
	Traits:      []string{"Unique", "Complex", "Evolving", "Authentic", "Powerful", "Distinctive"},
	Strengths: []string{
		"Your natural talents",
		"Your innate wisdom",
		"Your personal power",
		"Your authentic expression",
	},
	Careers: []string{"Entrepreneur", "Consultant", "Creative", "Manager", "Specialist", "Advisor"},
	MoonEssence: "Your emotional landscape is rich and nuanced. Your Moon sign " +
		"reveals how you process feelings, what makes you feel secure, and how " +
		"you nurture yourself and others.",
	Needs: []string{
		"Understanding of your nature",
		"Space for your feelings",
		"Security in relationships",
		"Connection to comfort",
	},
	LuckyNumbers: []int{3, 7, 9, 12, 21},
	LuckyColors:  []string{"Purple", "Gold"},
	LuckyDays:    []string{"Thursday", "Sunday"},
	BestMonths:   []string{"March", "July"},
	Compatibility: []Compatibility{
		{Sign: "Aquarius", Label: "Intellectual Match", Score: 92},
		{Sign: "Gemini", Label: "Mental Connection", Score: 88},
		{Sign: "Libra", Label: "Harmonious Bond", Score: 86},
	},
}

// signContent — таблица по знакам. Частично заполненные записи дополняются
// дефолтами в Lookup.
var signContent = map[string]SignContent{
	"Aries": {
		TraitPhrase: "bold initiative and pioneering courage",
		SecretWound: "Beneath the boldness lives a fear that slowing down means falling behind.",
		Traits:      []string{"Courageous", "Direct", "Energetic", "Independent", "Competitive", "Passionate"},
		Compatibility: []Compatibility{
			{Sign: "Leo", Label: "Fire Kinship", Score: 93},
			{Sign: "Sagittarius", Label: "Adventure Partner", Score: 90},
			{Sign: "Gemini", Label: "Spark & Play", Score: 85},
		},
	},
	"Taurus": {
		TraitPhrase: "steady determination and sensual appreciation",
		SecretWound: "Change feels like loss before it feels like growth.",
		Traits:      []string{"Patient", "Reliable", "Devoted", "Practical", "Sensual", "Stubborn"},
		Compatibility: []Compatibility{
			{Sign: "Virgo", Label: "Grounded Harmony", Score: 91},
			{Sign: "Capricorn", Label: "Builder's Bond", Score: 89},
			{Sign: "Cancer", Label: "Home & Heart", Score: 87},
		},
	},
	"Gemini": {
		TraitPhrase: "curious intellect and adaptable wit",
		SecretWound: "The fear of boredom can keep you from the depth you secretly crave.",
		Traits:      []string{"Curious", "Adaptable", "Witty", "Expressive", "Sociable", "Restless"},
		Compatibility: []Compatibility{
			{Sign: "Libra", Label: "Airy Accord", Score: 92},
			{Sign: "Aquarius", Label: "Idea Exchange", Score: 90},
			{Sign: "Aries", Label: "Spark & Play", Score: 85},
		},
	},
	"Cancer": {
		TraitPhrase: "nurturing heart and protective instincts",
		Essence: "As a Cancer Sun, you possess the most nurturing energy in the " +
			"zodiac. You are deeply intuitive, emotionally intelligent, and fiercely " +
			"protective of those you love. Ruled by the Moon, you are connected to " +
			"the rhythms of emotion and intuition.",
		SecretWound: "You give shelter to everyone but rarely let anyone shelter you.",
		Traits:      []string{"Nurturing", "Intuitive", "Protective", "Emotional", "Tenacious", "Loyal"},
		Strengths: []string{
			"Extraordinary emotional intelligence",
			"Creating sanctuary for loved ones",
			"Deep intuitive wisdom",
			"Unwavering loyalty",
		},
		Careers: []string{"Therapist", "Chef", "Real Estate", "Nurse", "Social Worker", "Historian"},
		MoonEssence: "With your Moon in Cancer, you have the deepest emotional " +
			"reservoir in the zodiac. Your feelings run profound, your intuition is " +
			"razor-sharp, and your capacity for nurturing is unmatched. Home and " +
			"family are essential to your emotional wellbeing.",
		Needs: []string{
			"A safe, comfortable home",
			"Deep emotional connections",
			"Time to process feelings",
			"Security in relationships",
		},
		Compatibility: []Compatibility{
			{Sign: "Scorpio", Label: "Deep Waters", Score: 94},
			{Sign: "Pisces", Label: "Soul Current", Score: 91},
			{Sign: "Taurus", Label: "Home & Heart", Score: 87},
		},
	},
	"Leo": {
		TraitPhrase: "radiant confidence and creative fire",
		SecretWound: "Applause fills the room, yet the quiet afterwards can feel like disappearing.",
		Traits:      []string{"Confident", "Generous", "Creative", "Warm", "Dramatic", "Loyal"},
		Compatibility: []Compatibility{
			{Sign: "Aries", Label: "Fire Kinship", Score: 93},
			{Sign: "Sagittarius", Label: "Bright Horizons", Score: 90},
			{Sign: "Libra", Label: "Golden Pair", Score: 86},
		},
	},
	"Virgo": {
		TraitPhrase: "analytical mind and desire for perfection",
		SecretWound: "The standards you hold for yourself would be called cruelty if applied to a friend.",
		Traits:      []string{"Analytical", "Diligent", "Modest", "Practical", "Observant", "Precise"},
		Compatibility: []Compatibility{
			{Sign: "Taurus", Label: "Grounded Harmony", Score: 91},
			{Sign: "Capricorn", Label: "Quiet Mastery", Score: 90},
			{Sign: "Cancer", Label: "Care in Detail", Score: 85},
		},
	},
	"Libra": {
		TraitPhrase: "diplomatic grace and quest for harmony",
		Essence: "As a Libra Sun, you are the diplomat of the zodiac, blessed with " +
			"an innate understanding of harmony, beauty, and justice. You see both " +
			"sides of every situation and have a natural talent for bringing balance. " +
			"Ruled by Venus, you have an aesthetic sensibility that colors everything " +
			"you do.",
		SecretWound: "Keeping the peace has sometimes cost you your own voice.",
		Traits:      []string{"Diplomatic", "Charming", "Fair-minded", "Social", "Idealistic", "Graceful"},
		Strengths: []string{
			"Natural peacemaking abilities",
			"Gift for multiple perspectives",
			"Creating beauty everywhere",
			"Building meaningful partnerships",
		},
		Careers: []string{"Lawyer/Mediator", "Interior Designer", "Diplomat", "HR Professional", "Art Director", "Wedding Planner"},
		Compatibility: []Compatibility{
			{Sign: "Gemini", Label: "Airy Accord", Score: 92},
			{Sign: "Aquarius", Label: "Vision & Balance", Score: 89},
			{Sign: "Leo", Label: "Golden Pair", Score: 86},
		},
	},
	"Scorpio": {
		TraitPhrase: "emotional depth and transformative power",
		Essence: "As a Scorpio Sun, you possess one of the most powerful energies " +
			"in the zodiac. You are the phoenix, capable of complete destruction and " +
			"rebirth. Your emotional depth is unmatched, and your ability to see " +
			"through facades gives you almost psychic understanding of human nature.",
		SecretWound: "Trust, once broken around you, rebuilt itself into walls.",
		Traits:      []string{"Intense", "Passionate", "Resourceful", "Determined", "Magnetic", "Perceptive"},
		Strengths: []string{
			"Extraordinary emotional resilience",
			"Ability to transform adversity",
			"Deep loyalty to loved ones",
			"Natural investigative abilities",
		},
		Careers: []string{"Psychologist", "Detective", "Surgeon", "Financial Analyst", "Researcher", "Crisis Manager"},
		MoonEssence: "With your Moon in Scorpio, your emotional world is intense " +
			"and transformative. You don't do surface-level feelings. When you feel, " +
			"you feel with your entire being. This gives you incredible emotional " +
			"resilience.",
		Needs: []string{
			"Emotional depth and authenticity",
			"Privacy to process feelings",
			"Trust and absolute loyalty",
			"Opportunities for transformation",
		},
		Compatibility: []Compatibility{
			{Sign: "Cancer", Label: "Deep Waters", Score: 94},
			{Sign: "Pisces", Label: "Unspoken Understanding", Score: 92},
			{Sign: "Capricorn", Label: "Power Alliance", Score: 87},
		},
	},
	"Sagittarius": {
		TraitPhrase: "adventurous spirit and eternal optimism",
		Essence: "As a Sagittarius Sun, you are the archer of the zodiac, forever " +
			"aiming your arrow toward distant horizons. You possess an innate " +
			"optimism and an adventurous spirit that refuses to be contained. Your " +
			"ruling planet Jupiter blesses you with natural enthusiasm and faith in " +
			"life's journey.",
		SecretWound: "The horizon keeps moving, and part of you fears arriving.",
		Traits:      []string{"Adventurous", "Optimistic", "Philosophical", "Freedom-loving", "Honest", "Enthusiastic"},
		Strengths: []string{
			"Natural ability to inspire others",
			"Gift for seeing the bigger picture",
			"Fearless pursuit of truth",
			"Adaptability across situations",
		},
		Careers: []string{"University Professor", "Travel Writer", "Life Coach", "Publisher", "International Business", "Adventure Guide"},
		Compatibility: []Compatibility{
			{Sign: "Aries", Label: "Adventure Partner", Score: 90},
			{Sign: "Leo", Label: "Bright Horizons", Score: 90},
			{Sign: "Aquarius", Label: "Free Spirits", Score: 87},
		},
	},
	"Capricorn": {
		TraitPhrase: "ambitious drive and practical wisdom",
		SecretWound: "Rest feels unearned, no matter how much you have built.",
		Traits:      []string{"Ambitious", "Disciplined", "Patient", "Responsible", "Strategic", "Reserved"},
		Compatibility: []Compatibility{
			{Sign: "Taurus", Label: "Builder's Bond", Score: 89},
			{Sign: "Virgo", Label: "Quiet Mastery", Score: 90},
			{Sign: "Scorpio", Label: "Power Alliance", Score: 87},
		},
	},
	"Aquarius": {
		TraitPhrase: "innovative thinking and humanitarian vision",
		SecretWound: "Belonging everywhere in theory, you sometimes belong nowhere in feeling.",
		Traits:      []string{"Inventive", "Independent", "Humanitarian", "Original", "Detached", "Visionary"},
		Compatibility: []Compatibility{
			{Sign: "Gemini", Label: "Idea Exchange", Score: 90},
			{Sign: "Libra", Label: "Vision & Balance", Score: 89},
			{Sign: "Sagittarius", Label: "Free Spirits", Score: 87},
		},
	},
	"Pisces": {
		TraitPhrase: "intuitive gifts and boundless compassion",
		SecretWound: "Other people's pain arrives as your own, and boundaries blur.",
		Traits:      []string{"Compassionate", "Artistic", "Intuitive", "Gentle", "Dreamy", "Empathetic"},
		MoonEssence: "With your Moon in Pisces, your emotional nature is boundless " +
			"and deeply spiritual. You feel the interconnectedness of all things and " +
			"often experience emotions that seem to come from beyond yourself. Your " +
			"empathy is extraordinary.",
		Needs: []string{
			"Creative and spiritual outlets",
			"Time alone for reflection",
			"Beauty in your environment",
			"A partner who honors your sensitivity",
		},
		Compatibility: []Compatibility{
			{Sign: "Cancer", Label: "Soul Current", Score: 91},
			{Sign: "Scorpio", Label: "Unspoken Understanding", Score: 92},
			{Sign: "Taurus", Label: "Anchor & Dream", Score: 86},
		},
	},
}
