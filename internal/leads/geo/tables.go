package geo

// nanpAreaCodes maps North American Numbering Plan area codes to countries.
// Caribbean codes come first in source order because they are the agency's
// recruiting markets; the US and Canada blocks cover the rest of the plan.
var nanpAreaCodes = map[string]string{
	// Caribbean
	"809": "Dominican Republic",
	"829": "Dominican Republic",
	"849": "Dominican Republic",
	"787": "Puerto Rico",
	"939": "Puerto Rico",
	"876": "Jamaica",
	"658": "Jamaica",
	"242": "Bahamas",
	"246": "Barbados",
	"264": "Anguilla",
	"268": "Antigua and Barbuda",
	"284": "British Virgin Islands",
	"340": "US Virgin Islands",
	"345": "Cayman Islands",
	"441": "Bermuda",
	"473": "Grenada",
	"649": "Turks and Caicos",
	"664": "Montserrat",
	"721": "Sint Maarten",
	"758": "Saint Lucia",
	"767": "Dominica",
	"784": "Saint Vincent and the Grenadines",
	"868": "Trinidad and Tobago",
	"869": "Saint Kitts and Nevis",

	// Canada
	"204": "Canada", "226": "Canada", "236": "Canada", "249": "Canada",
	"250": "Canada", "289": "Canada", "306": "Canada", "343": "Canada",
	"365": "Canada", "403": "Canada", "416": "Canada", "418": "Canada",
	"431": "Canada", "437": "Canada", "438": "Canada", "450": "Canada",
	"506": "Canada", "514": "Canada", "519": "Canada", "548": "Canada",
	"579": "Canada", "581": "Canada", "587": "Canada", "604": "Canada",
	"613": "Canada", "639": "Canada", "647": "Canada", "705": "Canada",
	"709": "Canada", "778": "Canada", "780": "Canada", "782": "Canada",
	"807": "Canada", "819": "Canada", "825": "Canada", "867": "Canada",
	"873": "Canada", "902": "Canada", "905": "Canada",

	// USA
	"201": "USA", "202": "USA", "203": "USA", "205": "USA", "206": "USA",
	"207": "USA", "208": "USA", "209": "USA", "210": "USA", "212": "USA",
	"213": "USA", "214": "USA", "215": "USA", "216": "USA", "217": "USA",
	"218": "USA", "219": "USA", "224": "USA", "225": "USA", "228": "USA",
	"229": "USA", "231": "USA", "234": "USA", "239": "USA", "240": "USA",
	"248": "USA", "251": "USA", "252": "USA", "253": "USA", "254": "USA",
	"256": "USA", "260": "USA", "262": "USA", "267": "USA", "269": "USA",
	"270": "USA", "276": "USA", "281": "USA", "301": "USA", "302": "USA",
	"303": "USA", "304": "USA", "305": "USA", "307": "USA", "308": "USA",
	"309": "USA", "310": "USA", "312": "USA", "313": "USA", "314": "USA",
	"315": "USA", "316": "USA", "317": "USA", "318": "USA", "319": "USA",
	"320": "USA", "321": "USA", "323": "USA", "330": "USA", "334": "USA",
	"336": "USA", "337": "USA", "347": "USA", "351": "USA", "352": "USA",
	"360": "USA", "386": "USA", "401": "USA", "402": "USA", "404": "USA",
	"405": "USA", "406": "USA", "407": "USA", "408": "USA", "409": "USA",
	"410": "USA", "412": "USA", "413": "USA", "414": "USA", "415": "USA",
	"417": "USA", "419": "USA", "423": "USA", "425": "USA", "432": "USA",
	"434": "USA", "435": "USA", "440": "USA", "443": "USA", "469": "USA",
	"470": "USA", "475": "USA", "478": "USA", "479": "USA", "480": "USA",
	"484": "USA", "501": "USA", "502": "USA", "503": "USA", "504": "USA",
	"505": "USA", "507": "USA", "508": "USA", "509": "USA", "510": "USA",
	"512": "USA", "513": "USA", "515": "USA", "516": "USA", "517": "USA",
	"518": "USA", "520": "USA", "530": "USA", "540": "USA", "541": "USA",
	"551": "USA", "561": "USA", "562": "USA", "563": "USA", "567": "USA",
	"570": "USA", "571": "USA", "573": "USA", "574": "USA", "580": "USA",
	"585": "USA", "586": "USA", "601": "USA", "602": "USA", "603": "USA",
	"605": "USA", "606": "USA", "607": "USA", "608": "USA", "609": "USA",
	"610": "USA", "612": "USA", "614": "USA", "615": "USA", "616": "USA",
	"617": "USA", "618": "USA", "619": "USA", "620": "USA", "623": "USA",
	"626": "USA", "628": "USA", "629": "USA", "630": "USA", "631": "USA",
	"636": "USA", "641": "USA", "646": "USA", "650": "USA", "651": "USA",
	"657": "USA", "660": "USA", "661": "USA", "662": "USA", "667": "USA",
	"678": "USA", "682": "USA", "701": "USA", "702": "USA", "703": "USA",
	"704": "USA", "706": "USA", "707": "USA", "708": "USA", "712": "USA",
	"713": "USA", "714": "USA", "715": "USA", "716": "USA", "717": "USA",
	"718": "USA", "719": "USA", "720": "USA", "724": "USA", "727": "USA",
	"731": "USA", "732": "USA", "734": "USA", "737": "USA", "740": "USA",
	"747": "USA", "754": "USA", "757": "USA", "760": "USA", "762": "USA",
	"763": "USA", "765": "USA", "769": "USA", "770": "USA", "772": "USA",
	"773": "USA", "774": "USA", "775": "USA", "779": "USA", "781": "USA",
	"785": "USA", "786": "USA", "801": "USA", "802": "USA", "803": "USA",
	"804": "USA", "805": "USA", "806": "USA", "808": "USA", "810": "USA",
	"812": "USA", "813": "USA", "814": "USA", "815": "USA", "816": "USA",
	"817": "USA", "818": "USA", "828": "USA", "830": "USA", "831": "USA",
	"832": "USA", "843": "USA", "845": "USA", "847": "USA", "848": "USA",
	"850": "USA", "856": "USA", "857": "USA", "858": "USA", "859": "USA",
	"860": "USA", "862": "USA", "863": "USA", "864": "USA", "865": "USA",
	"870": "USA", "872": "USA", "878": "USA", "901": "USA", "903": "USA",
	"904": "USA", "906": "USA", "907": "USA", "908": "USA", "909": "USA",
	"910": "USA", "912": "USA", "913": "USA", "914": "USA", "915": "USA",
	"916": "USA", "917": "USA", "918": "USA", "919": "USA", "920": "USA",
	"925": "USA", "928": "USA", "929": "USA", "931": "USA", "936": "USA",
	"937": "USA", "938": "USA", "940": "USA", "941": "USA", "947": "USA",
	"949": "USA", "951": "USA", "952": "USA", "954": "USA", "956": "USA",
	"959": "USA", "970": "USA", "971": "USA", "972": "USA", "973": "USA",
	"978": "USA", "979": "USA", "980": "USA", "984": "USA", "985": "USA",
	"989": "USA",
}

// callingCodes maps international dialing prefixes to countries. Prefixes are
// matched longest-first (3, then 2, then 1 digits).
var callingCodes = map[string]string{
	// South and Central America, Caribbean
	"51":  "Peru",
	"52":  "Mexico",
	"53":  "Cuba",
	"54":  "Argentina",
	"55":  "Brazil",
	"56":  "Chile",
	"57":  "Colombia",
	"58":  "Venezuela",
	"591": "Bolivia",
	"593": "Ecuador",
	"595": "Paraguay",
	"598": "Uruguay",
	"502": "Guatemala",
	"503": "El Salvador",
	"504": "Honduras",
	"505": "Nicaragua",
	"506": "Costa Rica",
	"507": "Panama",
	"509": "Haiti",

	// Europe
	"30":  "Greece",
	"31":  "Netherlands",
	"32":  "Belgium",
	"33":  "France",
	"34":  "Spain",
	"39":  "Italy",
	"40":  "Romania",
	"41":  "Switzerland",
	"43":  "Austria",
	"44":  "United Kingdom",
	"45":  "Denmark",
	"46":  "Sweden",
	"47":  "Norway",
	"48":  "Poland",
	"49":  "Germany",
	"351": "Portugal",
	"353": "Ireland",
	"380": "Ukraine",
	"7":   "Russia",
	"90":  "Turkey",

	// Asia
	"60": "Malaysia",
	"62": "Indonesia",
	"63": "Philippines",
	"65": "Singapore",
	"66": "Thailand",
	"81": "Japan",
	"82": "South Korea",
	"84": "Vietnam",
	"86": "China",
	"91": "India",
	"92": "Pakistan",

	// Oceania
	"61": "Australia",
	"64": "New Zealand",

	// Middle East and Africa
	"20":  "Egypt",
	"27":  "South Africa",
	"212": "Morocco",
	"213": "Algeria",
	"216": "Tunisia",
	"234": "Nigeria",
	"966": "Saudi Arabia",
	"971": "United Arab Emirates",
	"972": "Israel",
}
