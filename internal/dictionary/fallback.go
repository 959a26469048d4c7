package dictionary

// fallbackWords is the small embedded dictionary used when data/words.txt
// is absent. It favors short, common, classroom-plausible words so the
// construction engine still produces sensible recommendations out of the
// box.
var fallbackWords = []string{
	"act", "ace", "add", "age", "aid", "air", "ant", "ape", "arc", "are",
	"arm", "art", "ash", "ask", "ate", "bad", "bag", "ban", "bar", "bat",
	"bay", "bed", "bee", "beg", "bet", "bid", "big", "bin", "bit", "boa",
	"boat", "boy", "bud", "bug", "bun", "bus", "but", "buy", "cab", "can",
	"cap", "car", "cat", "cot", "cow", "cry", "cub", "cup", "cut", "dam",
	"day", "den", "dig", "dim", "dip", "dog", "dot", "dry", "dug", "ear",
	"eat", "egg", "elf", "elk", "end", "era", "eve", "eye", "fan", "far",
	"fat", "fed", "few", "fig", "fin", "fit", "fix", "flu", "fly", "fog",
	"fox", "fry", "fun", "fur", "gap", "gas", "gel", "gem", "get", "gin",
	"got", "gum", "gun", "gut", "gym", "had", "ham", "hat", "hay", "hen",
	"her", "hex", "hid", "him", "hip", "his", "hit", "hog", "hop", "hot",
	"how", "hub", "hue", "hug", "hum", "hut", "ice", "ink", "inn", "ion",
	"ivy", "jam", "jar", "jaw", "jet", "job", "jog", "joy", "jug", "keg",
	"key", "kid", "kin", "kit", "lab", "lad", "lag", "lap", "law", "lay",
	"led", "leg", "let", "lid", "lip", "lit", "log", "lot", "low", "mad",
	"man", "map", "mat", "may", "mix", "mob", "mom", "mop", "mud", "mug",
	"nap", "net", "new", "nod", "nor", "not", "now", "nut", "oak", "oar",
	"odd", "off", "oil", "old", "one", "opt", "orb", "ore", "our", "out",
	"owe", "owl", "own", "pad", "pan", "pat", "paw", "pay", "pea", "pen",
	"pet", "pie", "pig", "pin", "pit", "pod", "pop", "pot", "pub", "pup",
	"put", "rag", "ram", "ran", "rap", "rat", "raw", "ray", "red", "rib",
	"rid", "rim", "rip", "rob", "rod", "rot", "row", "rub", "rug", "run",
	"rut", "sad", "sap", "sat", "saw", "say", "sea", "set", "sew", "she",
	"shy", "sin", "sip", "sir", "sit", "six", "ski", "sky", "sly", "sob",
	"sod", "son", "sow", "soy", "spa", "spy", "sub", "sue", "sum", "sun",
	"tab", "tag", "tan", "tap", "tar", "tax", "tea", "ten", "the", "tie",
	"tin", "tip", "toe", "ton", "too", "top", "tow", "toy", "try", "tub",
	"tug", "use", "van", "vat", "vet", "via", "vow", "wag", "war", "was",
	"wax", "way", "web", "wed", "wet", "who", "why", "wig", "win", "wit",
	"woe", "won", "wow", "yak", "yam", "yes", "yet", "you", "zag", "zap",
	"zig", "zip", "zoo",
	"about", "actor", "aboard", "again", "alarm", "alert", "alike", "alive",
	"alone", "along", "angel", "anger", "angle", "apple", "apply", "argue",
	"arise", "armor", "aside", "audio", "avoid", "await", "awake", "award",
	"badge", "baker", "beach", "begin", "below", "bench", "birth", "blame",
	"blank", "blast", "blend", "bless", "blind", "block", "blood", "board",
	"boast", "brain", "brave", "bread", "break", "breed", "brick", "bride",
	"brief", "bring", "broad", "brown", "brush", "build", "bunch", "burst",
	"cabin", "cable", "candy", "carry", "catch", "cause", "chain", "chair",
	"chalk", "charm", "chart", "chase", "cheap", "check", "cheer", "chest",
	"chief", "child", "chill", "choir", "chose", "civil", "claim", "class",
	"clean", "clear", "climb", "clock", "close", "cloth", "cloud", "coach",
	"coast", "could", "count", "court", "cover", "crack", "craft", "crash",
	"crazy", "cream", "crime", "crisp", "cross", "crowd", "crown", "cruel",
	"crush", "curve", "cycle", "daily", "dance", "death", "delay", "depth",
	"diary", "dirty", "doubt", "dozen", "draft", "drain", "drama", "dream",
	"dress", "drift", "drink", "drive", "dwell", "eager", "early", "earth",
	"eight", "elder", "elect", "enemy", "enjoy", "enter", "entry", "equal",
	"error", "essay", "event", "every", "exact", "exist", "extra", "faith",
	"false", "fault", "favor", "feast", "fence", "fever", "fiber", "field",
	"fifth", "fight", "final", "first", "flame", "flash", "fleet", "flesh",
	"flock", "flood", "floor", "flour", "fluid", "focus", "force", "forth",
	"found", "frame", "fresh", "front", "frost", "fruit", "fuel", "funny",
	"gauge", "ghost", "giant", "given", "glass", "globe", "glory", "grace",
	"grade", "grain", "grand", "grant", "grape", "graph", "grasp", "grass",
	"great", "green", "greet", "grief", "grind", "gross", "group", "grove",
	"guard", "guess", "guest", "guide", "habit", "happy", "harsh", "haste",
	"heart", "heavy", "hello", "hence", "honor", "horse", "hotel", "house",
	"human", "humor", "ideal", "image", "index", "inner", "input", "issue",
	"ivory", "judge", "juice", "knife", "known", "label", "labor", "large",
	"laser", "later", "laugh", "layer", "learn", "least", "leave", "legal",
	"level", "light", "limit", "local", "logic", "loose", "lower", "lucky",
	"lunch", "magic", "major", "maker", "march", "match", "maybe", "mayor",
	"media", "metal", "meter", "might", "minor", "minus", "mixed", "model",
	"money", "month", "moral", "motor", "mount", "mouse", "mouth", "music",
	"needy", "nerve", "never", "newly", "noise", "north", "novel", "nurse",
	"ocean", "offer", "often", "order", "organ", "other", "ought", "outer",
	"owner", "panel", "panic", "paper", "party", "pause", "peace", "phase",
	"phone", "photo", "piano", "piece", "pilot", "pitch", "place", "plain",
	"plane", "plant", "plate", "point", "pound", "power", "press", "price",
	"pride", "prime", "print", "prior", "prize", "proof", "proud", "prove",
	"queen", "quick", "quiet", "quite", "radio", "raise", "range", "rapid",
	"ratio", "reach", "ready", "realm", "rebel", "refer", "relax", "reply",
	"right", "rival", "river", "roast", "robot", "roman", "rough", "round",
	"route", "royal", "rural", "salad", "sauce", "scale", "scare", "scene",
	"scope", "score", "sense", "serve", "seven", "shade", "shake", "shall",
	"shape", "share", "sharp", "sheet", "shelf", "shell", "shift", "shine",
	"shirt", "shock", "shoot", "short", "shown", "sight", "silly", "since",
	"sixth", "skill", "sleep", "slide", "small", "smart", "smell", "smile",
	"smoke", "solid", "solve", "sound", "south", "space", "spare", "speak",
	"speed", "spend", "spent", "split", "spoke", "sport", "staff", "stage",
	"stair", "stake", "stand", "start", "state", "steam", "steel", "steep",
	"stick", "still", "stock", "stone", "store", "storm", "story", "strip",
	"study", "stuff", "style", "sugar", "suite", "super", "sweet", "swift",
	"table", "taste", "teach", "teeth", "theme", "there", "thick", "thing",
	"think", "third", "those", "three", "throw", "tight", "title", "today",
	"topic", "total", "touch", "tough", "tower", "track", "trade", "train",
	"treat", "trend", "trial", "tribe", "trick", "truck", "truly", "trust",
	"truth", "twice", "under", "union", "unity", "until", "upper", "urban",
	"usage", "usual", "valid", "value", "video", "virus", "visit", "vital",
	"voice", "waste", "watch", "water", "wheel", "where", "which", "while",
	"white", "whole", "whose", "woman", "world", "worry", "worth", "would",
	"write", "wrong", "young", "youth",
}
