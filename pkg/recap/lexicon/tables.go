package lexicon

// Built-in classification tables. These mirror the markers emitted by the
// chat export format plus the stop-word lists used across the lexical
// statistics. All tables are copied into a Set at construction time and are
// never mutated afterwards.

// defaultSystemPhrases are substrings that identify platform-generated
// messages when they appear in a message body.
var defaultSystemPhrases = []string{
	"Messages and calls are end-to-end encrypted",
	"created group",
	"added you",
	"left the group",
	"removed",
	"changed the group",
	"You're now an admin",
	"You're no longer an admin",
	"changed this group's icon",
	"deleted this group's icon",
	"changed the subject",
	"joined using this group's invite link",
}

// defaultGroupSystemPhrases identify messages whose "sender" is actually the
// group itself (exports attribute certain system events to the group name).
// Matched case-insensitively as substrings.
var defaultGroupSystemPhrases = []string{
	"you created group",
	"you changed the group name",
	"you changed this group",
	"you changed the subject",
	"you changed the settings",
	"messages and calls are end-to-end encrypted",
	"only messages that mention",
	"added you",
	"removed you",
	"left",
	"joined using this group",
	"changed the group",
	"you're now an admin",
	"can be read by meta",
	"allow only admins",
}

// defaultIgnoredSenders are bot/system senders excluded from participant
// statistics.
var defaultIgnoredSenders = []string{
	"Meta AI",
	"You",
}

// defaultMediaMarkers maps attachment placeholders to media kinds. Order
// matters: the first marker found in a message body wins.
var defaultMediaMarkers = []MediaMarker{
	{Kind: MediaImage, Marker: "image omitted"},
	{Kind: MediaVideo, Marker: "video omitted"},
	{Kind: MediaAudio, Marker: "audio omitted"},
	{Kind: MediaSticker, Marker: "sticker omitted"},
	{Kind: MediaGIF, Marker: "GIF omitted"},
	{Kind: MediaDocument, Marker: "document omitted"},
	{Kind: MediaContact, Marker: "contact card omitted"},
	{Kind: MediaLocation, Marker: "location omitted"},
}

// defaultInstitutionTokens are department/section codes that show up as
// suffixes in saved contact names ("ravi kumar cse g2"). Used by the
// identity merger to prefer the suffix-free variant of a name.
var defaultInstitutionTokens = []string{
	"ssn", "cse", "ece", "eee", "mech", "bme", "chem", "civil",
	"g1", "g2", "g3", "s1", "s2", "s3", "a1", "a2", "b1", "b2",
}

// defaultGenericPhrases are n-grams too common to count as a personal
// catchphrase.
var defaultGenericPhrases = []string{
	"in the", "on the", "to the", "for the", "and the", "of the",
	"me and", "you and", "is the", "it is", "this is", "that is",
	"i am", "i was", "i have", "i will", "i can", "i think",
	"going to", "want to", "have to", "need to", "got to",
	"what is", "what are", "how is", "how are", "why is",
	"do you", "are you", "did you", "can you", "will you",
	"don know", "don think", "i don", "you don",
	"it was", "it will", "there is", "there are",
	"be like", "would be", "could be", "will be",
}

// defaultLaughTokens are textual laugh markers counted by the laugh
// statistics. Matched as whole words, lowercased.
var defaultLaughTokens = []string{"lol", "lmao", "haha", "hehe", "rofl"}

// laughEmojis are counted per occurrence on top of the textual tokens.
var laughEmojis = []rune{'😂', '🤣', '😹'}

// Mood emoji sets used by the group-vibe synthesis.
var (
	humorEmojis     = []string{"😂", "🤣", "😹"}
	dramaticEmojis  = []string{"😭", "😢", "😞"}
	wholesomeEmojis = []string{"❤️", "🥰", "😍"}
	hypeEmojis      = []string{"🔥", "💯", "🙌"}
)

// defaultStopWords is the base stop-word list applied to all lexical
// statistics. It mixes standard English function words with chat slang and
// romanized Tamil filler common in the exports this engine was built for.
var defaultStopWords = []string{
	// basic english
	"the", "a", "an", "is", "it", "to", "of", "and", "in", "for", "on",
	"with", "as", "at", "by", "this", "that", "i", "you", "he", "she",
	"we", "they", "me", "my", "your", "his", "her", "its", "our", "their",
	"am", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might",
	"must", "shall", "can", "need", "dare", "ought", "used", "get", "got",
	"but", "or", "if", "then", "so", "just", "now", "here", "there",
	"what", "who", "how", "when", "where", "why", "which", "whom", "whose",
	"all", "each", "every", "both", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "than", "too", "very",
	"any", "much", "many", "else", "either", "neither", "whether", "ever",
	"once", "twice", "lot", "lots", "bit", "little", "less", "least",

	// verbs
	"go", "going", "went", "gone", "come", "came", "coming", "take", "took",
	"taken", "taking", "make", "made", "making", "getting",
	"see", "saw", "seen", "seeing", "know", "knew", "known", "knowing",
	"think", "thought", "thinking", "want", "wanted", "wanting",
	"say", "said", "saying", "tell", "told", "telling", "ask", "asked",
	"try", "tried", "trying", "let", "put", "give", "gave", "given",
	"look", "looked", "looking", "find", "found", "finding",
	"use", "using", "keep", "kept", "keeping",
	"start", "started", "starting", "stop", "stopped", "stopping",
	"send", "sent", "sending", "read", "reading", "write", "writing",
	"call", "called", "calling", "reply", "replied", "replying",
	"wait", "waiting", "leave", "left", "leaving", "stay", "staying",
	"change", "changed", "changing", "meet", "met", "meeting",
	"feel", "felt", "feeling", "seems", "seem", "seemed",

	// adjectives / adverbs
	"good", "bad", "best", "better", "worse", "worst", "great", "nice",
	"right", "wrong", "true", "false", "real", "fake", "new", "old",
	"big", "small", "long", "short", "high", "low", "first", "last",
	"next", "early", "late", "fast", "slow", "easy", "hard", "sure",
	"well", "back", "even", "still", "also", "again", "already", "always",
	"never", "maybe", "probably", "actually", "really", "literally",
	"basically", "definitely", "exactly", "honestly", "seriously",
	"apparently", "obviously", "totally", "completely", "absolutely",

	// nouns
	"thing", "things", "stuff", "time", "times", "day", "days", "night",
	"week", "month", "year", "hour", "minute", "place", "way", "case",
	"point", "part", "side", "end", "fact", "life", "world", "home",
	"work", "job", "people", "person", "guy", "girl", "man", "woman",
	"friend", "friends", "everyone", "someone", "anyone", "nobody",
	"everything", "something", "anything", "nothing",
	"today", "tomorrow", "yesterday", "morning", "evening", "afternoon",
	"money", "phone", "office", "college", "school", "class", "exam",
	"food", "water", "sleep", "movie", "game", "song", "photo", "pic",
	"plan", "idea", "problem", "issue", "reason", "question", "answer",
	"text", "chat", "group", "link", "post", "comment",
	"free", "busy", "soon", "later", "online", "offline",
	"out", "inside", "outside", "near", "far", "close", "open", "done",
	"buy", "sell", "pay", "cost", "price", "order", "book", "check",

	// numbers
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",

	// pronouns / prepositions
	"him", "them", "us", "from", "into", "onto", "upon", "about", "after",
	"before", "between", "through", "during", "under", "over", "above", "below",

	// chat slang
	"lol", "lmao", "lmfao", "rofl", "haha", "hehe", "hihi", "omg", "wtf",
	"idk", "idc", "idgaf", "tbh", "ngl", "imo", "imho", "fyi", "btw", "afaik",
	"smh", "ffs", "jk", "irl", "tho", "rn", "atm", "asap",
	"ppl", "pls", "plz", "thx", "ty", "np", "nvm", "ofc", "obv",
	"gonna", "wanna", "gotta", "kinda", "sorta", "lemme", "gimme", "dunno",
	"wat", "wut", "abt", "thats", "whats", "hows", "whos",
	"shud", "cud", "wud", "chk", "msg", "msgs", "rply",
	"tom", "tmrw", "tmr", "tomo", "yday", "ytd", "yest",
	"summa", "somn", "smth", "smthn", "sumn", "alone", "full", "half",
	"coz", "cos", "cuz", "bcoz", "bcuz", "bcz", "bc", "because",
	"dont", "didnt", "wont", "cant", "shouldnt", "wouldnt", "couldnt",
	"isnt", "arent", "wasnt", "werent", "havent", "hasnt", "hadnt",
	"doing", "eating", "asking",
	"eat", "ate", "eaten", "drink", "drank", "drunk", "play", "played",
	"room", "rooms", "unit", "units", "house", "hostel", "floor",
	"ok", "okay", "okk", "okkk", "okayy", "okayyy", "kay", "kk", "kkk",
	"yes", "yea", "yeah", "yeahh", "yess", "yesss", "yup", "yep", "yeppp",
	"nah", "nope", "noo", "nooo",
	"hmm", "hmmm", "umm", "ummm", "uhh", "uhhh", "ahh", "ahhh", "ohh", "ohhh",
	"aha", "oho", "wow", "woww", "woah", "whoa", "damn", "dang", "darn",
	"bro", "bruh", "bruhhh", "dude", "boi", "boii", "gal", "sis",
	"guys", "yall", "fam", "homie", "bestie", "babe", "bby", "hun",
	"sir", "mam", "miss", "mrs", "mama", "papa", "mom", "dad",
	"shit", "crap", "fuck", "hell", "ass", "bitch", "wth",
	"cool", "lit", "fire", "sick", "dope", "noice", "awesome",
	"super", "ultra", "mega", "hyper", "extra",
	"love", "hate", "like", "thank", "thanks", "sorry", "please",
	"bye", "byee", "byeee", "cya", "ttyl", "gn", "gm", "gtg",
	"hii", "hiii", "hiiii", "hey", "heyy", "heyyy", "hello", "helloo",
	"wya", "wyd", "hru", "hbu", "sup", "wassup", "whatsup",

	// romanized tamil - particles, pronouns, fillers
	"da", "di", "na", "la", "ha", "ya", "ra", "pa", "ma", "va",
	"dei", "dai", "dey", "ada", "adi", "illa", "enna", "epdi", "enga",
	"seri", "sari", "aama", "aana", "appo", "ippo",
	"nee", "naan", "avan", "aval", "anga", "inga", "thaan", "dhaan",
	"kandipa", "paru", "sollu", "sollren", "sollura", "pannren", "pannura",
	"naa", "naanu", "naanga", "naangal",
	"nenga", "neenga", "ningal", "nin", "unga", "ungal",
	"avanga", "avangal", "ava", "ivan", "ival", "ivanga",
	"athu", "adhu", "ithu", "idhu", "atha", "itha", "adha", "idha",
	"antha", "andha", "intha", "indha", "etha", "edha", "entha", "endha",
	"athaan", "adhaan", "ithaan", "idhaan", "athey", "adhey", "ithey", "idhey",
	"athaane", "adhaane", "athaana", "adhaana",
	"athanda", "thanda", "thonda", "athonda",
	"athuvum", "ithuvum", "athuve", "ithuve",
	"enn", "unn", "ennoda", "unnoda", "ennaku", "enakku", "unakku", "onnaku",

	// romanized tamil - verbs
	"iruku", "irukku", "irukkum", "iruka", "irukka", "irukkaathu",
	"iruken", "irukken", "irukom", "irukkurom", "irukanga", "irukkanga",
	"irundha", "irundhu", "irundhaal", "irundhuchu", "irunduchu", "irunthichu",
	"irukkaan", "irukkaa", "irukaan",
	"irruku", "irrukku", "irrukum", "irruka", "irrukka",
	"illai", "illaiya", "illaye", "ille", "illiya",
	"illadha", "illaadha",
	"airuchu", "achu", "aachu", "ayiduchu", "aiduchu",
	"panna", "pannu", "pannunga", "pannuren", "pannuven", "pannurom",
	"pannudhu", "pannuchu", "panniruken", "panniruka", "pannalam", "panlaam",
	"solla", "sollunga", "sonnen", "sonna",
	"solradhu", "solraanga", "solranga", "sollurom", "solluvom",
	"paaru", "paaren", "paarunga", "paakuren", "paakurom",
	"paathuten", "paathen", "paathom", "paarkalaam", "paakalam",
	"vaa", "vaanga", "varen", "varom", "vanthuten", "vanthen", "vandhutten",
	"varuvom", "varuvanga", "varuvaanga", "vandha", "vantha",
	"poren", "porom", "pona", "poyiten", "poiten", "poiduven",
	"pogalaam", "polaam", "povom", "povaanga",
	"kudukuren", "kudukkuren", "kuduthuten", "kuduthen",
	"edukuren", "edukkuren", "eduthuten", "eduthen",
	"theriyum", "theriyala", "theriyathu", "therla", "therlaye", "theriyaadhu",
	"puriyu", "puriyala", "puriyum", "puriyuthu", "purinjuchu",
	"venum", "vendum", "venaam", "vendaam", "venumna",
	"mudiyum", "mudiyala", "mudiyathu", "mudinja", "mudiyaadhu",
	"nenaikuren", "nenaikkuren", "nenachen", "nanaichen", "nenaippen",

	// romanized tamil - connectors, question and time words
	"dhan", "than", "thaana", "dhaana", "thane", "dhane", "dhanae",
	"lam", "laam", "ellam", "elam", "ellaam", "elaam", "elamey", "ellamae", "ellame",
	"lla", "le", "ley", "laye", "lay", "lae",
	"um", "yum", "kum", "kkum",
	"kuda", "kooda", "koodave", "kudave",
	"mattum", "mathum", "mattumey", "mathumdhan",
	"dhanda",
	"nu", "nnu", "ngaradhu", "ngardhu",
	"aanaa", "ana", "aanal",
	"athan", "ithan",
	"yenna", "ennada", "enada", "ennadi", "ennanga",
	"yaar", "yaaru", "yar", "yaara", "yaaruku",
	"yenga", "engada", "engadhi", "engayo",
	"eppadi", "yeppadi", "yepdi", "eppudi", "yeppudi", "appudi", "ippudi",
	"ethu", "yethu", "edhu", "yedhu",
	"yen", "en", "yenda", "enda", "yenada",
	"evolo", "evlo", "evalo", "evlov", "avlo", "avolo", "avlov",
	"ipo", "ippove", "ippothan", "ippodhan", "ipodhaiku",
	"apo", "appove", "aprom", "approm", "apram", "aprm",
	"aparom", "aparam", "kaprom", "kapprm", "kapprom",
	"inniki", "inniku", "innaiku", "indhaiku",
	"naalaiku", "naalaikku", "naalaku", "nalaikku",
	"anniku", "andhaiku", "andra",
	"munnadhi", "munnadi", "appuram", "apurom",

	// romanized tamil - adjectives and misc
	"nalla", "nallave", "nallaa", "nallavan", "nalladhu",
	"romba", "rombha", "rombave",
	"konjam", "konjum", "koncham", "konchum",
	"neraiya", "neraya", "naraya",
	"sema", "semma", "semaya", "semmaya",
	"periya", "peria", "perusa", "perusu",
	"chinna", "china", "chinnadhu", "chinadhu",
	"pudhu", "pudhusu", "pudhusa",
	"pazhaya", "pazhaiya", "pazhadhu",
	"poru", "porum", "pothum", "podhum",
	"suma", "summave", "summadhan",
	"vera", "vere", "veradhu", "vereyadhu",
	"ore", "oru", "onnu", "onna", "orey",
	"rendu", "rendum", "rendume",
	"moonu", "monum", "moonum",
	"naalu", "naalum", "naalume",
	"anju", "anjum", "anjume",
	"daamn", "damm",
	"ahm", "uhm",
	"yeh", "yehh", "ehh", "ehhh",
	"okie", "okiee", "oki",
	"gotha", "kotha", "goathaa",
	"trw", "tmw",
	"nyt", "nite",
	"plis", "plss",
	"ohoh", "ohoo",
	"mari", "maari", "madri", "madhiri", "maadhiri", "maathiri",
	"thiruppi", "thirumbi", "thirupa",
	"ade", "adey", "aada",
	"polaye", "polayae", "pola",
	"moss", "mosu", "mossu",
	"tru", "thru",
	"mothu", "modhu", "motham",
	"adhellam", "athellam", "adhalam", "idhellam", "ithellam",
	"elaarum", "ellaarum", "elarum", "ellarum",
	"varikum", "varikkum", "varkum",
	"solranunga",
	"ipolam", "ipolaam", "ipalam",
	"asaiya", "aasaiya", "aasa",
	"dhidirnu", "thidirnu", "thideer",

	// generic
	"mean", "means", "meant", "meaning", "type", "types", "kind", "kinds",
	"sort", "sorts", "form", "forms", "level", "levels", "parts",

	// contraction leftovers
	"don", "didn", "won", "wouldn", "couldn", "shouldn", "isn", "aren",
	"wasn", "weren", "hasn", "haven", "hadn", "doesn", "ain",
	"ll", "ve", "re", "nt", "em", "ill", "ull",

	// time units
	"mins", "min", "hrs", "secs", "sec", "hours", "minutes",
	"second", "seconds", "weeks", "months", "years",
	"daily", "weekly", "monthly", "yearly", "ago",

	// activities
	"watch", "watched", "watching", "listen", "listened", "listening",
	"dinner", "lunch", "breakfast", "snack", "snacks", "brunch",

	// export/system artifacts
	"message", "messages", "edited", "deleted", "omitted", "media",
	"image", "video", "audio", "sticker", "gif", "document", "contact",
	"https", "http", "www", "com", "org", "net", "meta", "whatsapp",
}

// defaultTopicOnlyStopWords extends the base list for the topic extractor:
// slang that is fun in personal stats but meaningless as a "topic".
var defaultTopicOnlyStopWords = []string{
	"poda", "podi", "poyi", "po", "vada", "vadi",
	"ri",
	"aiyo", "aiyoo", "aiyyoo", "chee", "chi", "cha",
	"machaan", "macha", "machan", "thala", "anna", "akka",
	"solra",
	"theru",
	"inge", "ange",
	"yaru",
	"innum", "innu",
	"thana", "aam",
	"poo", "pooo",
	"sad", "happy",
}
