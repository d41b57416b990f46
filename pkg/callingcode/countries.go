package callingcode

// countries is the compiled-in reference table. Order matters: it is the final
// tie-break for shared calling codes and the order lists are returned in.
//
// Regions are editorial groupings for the back-office selectors, not UN M.49
// regions (Central America is grouped with the Caribbean). Caribbean and
// Pacific NANP members are registered under their four-digit area prefix so
// that they win over the plain "1".
//
// Shared calling codes need an explicit Priority (and usually Default) on the
// country most people mean when they see the prefix.
var countries = []Country{
	// North America
	{Code: "US", Name: "United States", Region: "North America", CallingCode: "1", Priority: 2, Default: true},
	{Code: "CA", Name: "Canada", Region: "North America", CallingCode: "1", Priority: 1},
	{Code: "MX", Name: "Mexico", Region: "North America", CallingCode: "52"},
	{Code: "GL", Name: "Greenland", Region: "North America", CallingCode: "299"},
	{Code: "PM", Name: "Saint Pierre and Miquelon", Region: "North America", CallingCode: "508"},
	{Code: "BM", Name: "Bermuda", Region: "North America", CallingCode: "1441"},

	// Caribbean and Central America
	{Code: "BS", Name: "Bahamas", Region: "Caribbean", CallingCode: "1242"},
	{Code: "BB", Name: "Barbados", Region: "Caribbean", CallingCode: "1246"},
	{Code: "AI", Name: "Anguilla", Region: "Caribbean", CallingCode: "1264"},
	{Code: "AG", Name: "Antigua and Barbuda", Region: "Caribbean", CallingCode: "1268"},
	{Code: "VG", Name: "British Virgin Islands", Region: "Caribbean", CallingCode: "1284"},
	{Code: "VI", Name: "U.S. Virgin Islands", Region: "Caribbean", CallingCode: "1340"},
	{Code: "KY", Name: "Cayman Islands", Region: "Caribbean", CallingCode: "1345"},
	{Code: "GD", Name: "Grenada", Region: "Caribbean", CallingCode: "1473"},
	{Code: "TC", Name: "Turks and Caicos Islands", Region: "Caribbean", CallingCode: "1649"},
	{Code: "MS", Name: "Montserrat", Region: "Caribbean", CallingCode: "1664"},
	{Code: "SX", Name: "Sint Maarten", Region: "Caribbean", CallingCode: "1721"},
	{Code: "LC", Name: "Saint Lucia", Region: "Caribbean", CallingCode: "1758"},
	{Code: "DM", Name: "Dominica", Region: "Caribbean", CallingCode: "1767"},
	{Code: "VC", Name: "Saint Vincent and the Grenadines", Region: "Caribbean", CallingCode: "1784"},
	{Code: "PR", Name: "Puerto Rico", Region: "Caribbean", CallingCode: "1787"},
	{Code: "DO", Name: "Dominican Republic", Region: "Caribbean", CallingCode: "1809"},
	{Code: "TT", Name: "Trinidad and Tobago", Region: "Caribbean", CallingCode: "1868"},
	{Code: "KN", Name: "Saint Kitts and Nevis", Region: "Caribbean", CallingCode: "1869"},
	{Code: "JM", Name: "Jamaica", Region: "Caribbean", CallingCode: "1876"},
	{Code: "CU", Name: "Cuba", Region: "Caribbean", CallingCode: "53"},
	{Code: "HT", Name: "Haiti", Region: "Caribbean", CallingCode: "509"},
	{Code: "GP", Name: "Guadeloupe", Region: "Caribbean", CallingCode: "590", Priority: 1, Default: true},
	{Code: "BL", Name: "Saint Barthélemy", Region: "Caribbean", CallingCode: "590"},
	{Code: "MF", Name: "Saint Martin", Region: "Caribbean", CallingCode: "590"},
	{Code: "MQ", Name: "Martinique", Region: "Caribbean", CallingCode: "596"},
	{Code: "AW", Name: "Aruba", Region: "Caribbean", CallingCode: "297"},
	{Code: "CW", Name: "Curaçao", Region: "Caribbean", CallingCode: "599", Priority: 1, Default: true},
	{Code: "BQ", Name: "Caribbean Netherlands", Region: "Caribbean", CallingCode: "599"},
	{Code: "BZ", Name: "Belize", Region: "Caribbean", CallingCode: "501"},
	{Code: "GT", Name: "Guatemala", Region: "Caribbean", CallingCode: "502"},
	{Code: "SV", Name: "El Salvador", Region: "Caribbean", CallingCode: "503"},
	{Code: "HN", Name: "Honduras", Region: "Caribbean", CallingCode: "504"},
	{Code: "NI", Name: "Nicaragua", Region: "Caribbean", CallingCode: "505"},
	{Code: "CR", Name: "Costa Rica", Region: "Caribbean", CallingCode: "506"},
	{Code: "PA", Name: "Panama", Region: "Caribbean", CallingCode: "507"},

	// South America
	{Code: "BR", Name: "Brazil", Region: "South America", CallingCode: "55"},
	{Code: "AR", Name: "Argentina", Region: "South America", CallingCode: "54"},
	{Code: "CL", Name: "Chile", Region: "South America", CallingCode: "56"},
	{Code: "CO", Name: "Colombia", Region: "South America", CallingCode: "57"},
	{Code: "VE", Name: "Venezuela", Region: "South America", CallingCode: "58"},
	{Code: "PE", Name: "Peru", Region: "South America", CallingCode: "51"},
	{Code: "EC", Name: "Ecuador", Region: "South America", CallingCode: "593"},
	{Code: "BO", Name: "Bolivia", Region: "South America", CallingCode: "591"},
	{Code: "PY", Name: "Paraguay", Region: "South America", CallingCode: "595"},
	{Code: "UY", Name: "Uruguay", Region: "South America", CallingCode: "598"},
	{Code: "GY", Name: "Guyana", Region: "South America", CallingCode: "592"},
	{Code: "SR", Name: "Suriname", Region: "South America", CallingCode: "597"},
	{Code: "GF", Name: "French Guiana", Region: "South America", CallingCode: "594"},
	{Code: "FK", Name: "Falkland Islands", Region: "South America", CallingCode: "500"},

	// Europe
	{Code: "GB", Name: "United Kingdom", Region: "Europe", CallingCode: "44"},
	{Code: "IE", Name: "Ireland", Region: "Europe", CallingCode: "353"},
	{Code: "FR", Name: "France", Region: "Europe", CallingCode: "33"},
	{Code: "DE", Name: "Germany", Region: "Europe", CallingCode: "49"},
	{Code: "IT", Name: "Italy", Region: "Europe", CallingCode: "39", Priority: 1, Default: true},
	{Code: "VA", Name: "Vatican City", Region: "Europe", CallingCode: "39"},
	{Code: "SM", Name: "San Marino", Region: "Europe", CallingCode: "378"},
	{Code: "ES", Name: "Spain", Region: "Europe", CallingCode: "34"},
	{Code: "PT", Name: "Portugal", Region: "Europe", CallingCode: "351"},
	{Code: "NL", Name: "Netherlands", Region: "Europe", CallingCode: "31"},
	{Code: "BE", Name: "Belgium", Region: "Europe", CallingCode: "32"},
	{Code: "LU", Name: "Luxembourg", Region: "Europe", CallingCode: "352"},
	{Code: "CH", Name: "Switzerland", Region: "Europe", CallingCode: "41"},
	{Code: "LI", Name: "Liechtenstein", Region: "Europe", CallingCode: "423"},
	{Code: "AT", Name: "Austria", Region: "Europe", CallingCode: "43"},
	{Code: "MC", Name: "Monaco", Region: "Europe", CallingCode: "377"},
	{Code: "AD", Name: "Andorra", Region: "Europe", CallingCode: "376"},
	{Code: "GI", Name: "Gibraltar", Region: "Europe", CallingCode: "350"},
	{Code: "DK", Name: "Denmark", Region: "Europe", CallingCode: "45"},
	{Code: "FO", Name: "Faroe Islands", Region: "Europe", CallingCode: "298"},
	{Code: "SE", Name: "Sweden", Region: "Europe", CallingCode: "46"},
	{Code: "NO", Name: "Norway", Region: "Europe", CallingCode: "47", Priority: 1, Default: true},
	{Code: "SJ", Name: "Svalbard and Jan Mayen", Region: "Europe", CallingCode: "47"},
	{Code: "FI", Name: "Finland", Region: "Europe", CallingCode: "358", Priority: 1, Default: true},
	{Code: "AX", Name: "Åland Islands", Region: "Europe", CallingCode: "358"},
	{Code: "IS", Name: "Iceland", Region: "Europe", CallingCode: "354"},
	{Code: "PL", Name: "Poland", Region: "Europe", CallingCode: "48"},
	{Code: "CZ", Name: "Czechia", Region: "Europe", CallingCode: "420"},
	{Code: "SK", Name: "Slovakia", Region: "Europe", CallingCode: "421"},
	{Code: "HU", Name: "Hungary", Region: "Europe", CallingCode: "36"},
	{Code: "RO", Name: "Romania", Region: "Europe", CallingCode: "40"},
	{Code: "BG", Name: "Bulgaria", Region: "Europe", CallingCode: "359"},
	{Code: "GR", Name: "Greece", Region: "Europe", CallingCode: "30"},
	{Code: "CY", Name: "Cyprus", Region: "Europe", CallingCode: "357"},
	{Code: "MT", Name: "Malta", Region: "Europe", CallingCode: "356"},
	{Code: "SI", Name: "Slovenia", Region: "Europe", CallingCode: "386"},
	{Code: "HR", Name: "Croatia", Region: "Europe", CallingCode: "385"},
	{Code: "BA", Name: "Bosnia and Herzegovina", Region: "Europe", CallingCode: "387"},
	{Code: "RS", Name: "Serbia", Region: "Europe", CallingCode: "381"},
	{Code: "ME", Name: "Montenegro", Region: "Europe", CallingCode: "382"},
	{Code: "XK", Name: "Kosovo", Region: "Europe", CallingCode: "383"},
	{Code: "MK", Name: "North Macedonia", Region: "Europe", CallingCode: "389"},
	{Code: "AL", Name: "Albania", Region: "Europe", CallingCode: "355"},
	{Code: "MD", Name: "Moldova", Region: "Europe", CallingCode: "373"},
	{Code: "UA", Name: "Ukraine", Region: "Europe", CallingCode: "380"},
	{Code: "BY", Name: "Belarus", Region: "Europe", CallingCode: "375"},
	{Code: "LT", Name: "Lithuania", Region: "Europe", CallingCode: "370"},
	{Code: "LV", Name: "Latvia", Region: "Europe", CallingCode: "371"},
	{Code: "EE", Name: "Estonia", Region: "Europe", CallingCode: "372"},
	{Code: "RU", Name: "Russia", Region: "Europe", CallingCode: "7", Priority: 1, Default: true},

	// Asia
	{Code: "KZ", Name: "Kazakhstan", Region: "Asia", CallingCode: "7"},
	{Code: "UZ", Name: "Uzbekistan", Region: "Asia", CallingCode: "998"},
	{Code: "TM", Name: "Turkmenistan", Region: "Asia", CallingCode: "993"},
	{Code: "TJ", Name: "Tajikistan", Region: "Asia", CallingCode: "992"},
	{Code: "KG", Name: "Kyrgyzstan", Region: "Asia", CallingCode: "996"},
	{Code: "CN", Name: "China", Region: "Asia", CallingCode: "86"},
	{Code: "HK", Name: "Hong Kong", Region: "Asia", CallingCode: "852"},
	{Code: "MO", Name: "Macao", Region: "Asia", CallingCode: "853"},
	{Code: "TW", Name: "Taiwan", Region: "Asia", CallingCode: "886"},
	{Code: "JP", Name: "Japan", Region: "Asia", CallingCode: "81"},
	{Code: "KR", Name: "South Korea", Region: "Asia", CallingCode: "82"},
	{Code: "KP", Name: "North Korea", Region: "Asia", CallingCode: "850"},
	{Code: "MN", Name: "Mongolia", Region: "Asia", CallingCode: "976"},
	{Code: "IN", Name: "India", Region: "Asia", CallingCode: "91"},
	{Code: "PK", Name: "Pakistan", Region: "Asia", CallingCode: "92"},
	{Code: "BD", Name: "Bangladesh", Region: "Asia", CallingCode: "880"},
	{Code: "LK", Name: "Sri Lanka", Region: "Asia", CallingCode: "94"},
	{Code: "NP", Name: "Nepal", Region: "Asia", CallingCode: "977"},
	{Code: "BT", Name: "Bhutan", Region: "Asia", CallingCode: "975"},
	{Code: "MV", Name: "Maldives", Region: "Asia", CallingCode: "960"},
	{Code: "AF", Name: "Afghanistan", Region: "Asia", CallingCode: "93"},
	{Code: "MM", Name: "Myanmar", Region: "Asia", CallingCode: "95"},
	{Code: "TH", Name: "Thailand", Region: "Asia", CallingCode: "66"},
	{Code: "VN", Name: "Vietnam", Region: "Asia", CallingCode: "84"},
	{Code: "LA", Name: "Laos", Region: "Asia", CallingCode: "856"},
	{Code: "KH", Name: "Cambodia", Region: "Asia", CallingCode: "855"},
	{Code: "MY", Name: "Malaysia", Region: "Asia", CallingCode: "60"},
	{Code: "SG", Name: "Singapore", Region: "Asia", CallingCode: "65"},
	{Code: "ID", Name: "Indonesia", Region: "Asia", CallingCode: "62"},
	{Code: "PH", Name: "Philippines", Region: "Asia", CallingCode: "63"},
	{Code: "BN", Name: "Brunei", Region: "Asia", CallingCode: "673"},
	{Code: "TL", Name: "Timor-Leste", Region: "Asia", CallingCode: "670"},

	// Middle East
	{Code: "TR", Name: "Turkey", Region: "Middle East", CallingCode: "90"},
	{Code: "IL", Name: "Israel", Region: "Middle East", CallingCode: "972"},
	{Code: "PS", Name: "Palestine", Region: "Middle East", CallingCode: "970"},
	{Code: "JO", Name: "Jordan", Region: "Middle East", CallingCode: "962"},
	{Code: "LB", Name: "Lebanon", Region: "Middle East", CallingCode: "961"},
	{Code: "SY", Name: "Syria", Region: "Middle East", CallingCode: "963"},
	{Code: "IQ", Name: "Iraq", Region: "Middle East", CallingCode: "964"},
	{Code: "IR", Name: "Iran", Region: "Middle East", CallingCode: "98"},
	{Code: "SA", Name: "Saudi Arabia", Region: "Middle East", CallingCode: "966"},
	{Code: "AE", Name: "United Arab Emirates", Region: "Middle East", CallingCode: "971"},
	{Code: "QA", Name: "Qatar", Region: "Middle East", CallingCode: "974"},
	{Code: "BH", Name: "Bahrain", Region: "Middle East", CallingCode: "973"},
	{Code: "KW", Name: "Kuwait", Region: "Middle East", CallingCode: "965"},
	{Code: "OM", Name: "Oman", Region: "Middle East", CallingCode: "968"},
	{Code: "YE", Name: "Yemen", Region: "Middle East", CallingCode: "967"},
	{Code: "GE", Name: "Georgia", Region: "Middle East", CallingCode: "995"},
	{Code: "AM", Name: "Armenia", Region: "Middle East", CallingCode: "374"},
	{Code: "AZ", Name: "Azerbaijan", Region: "Middle East", CallingCode: "994"},

	// Africa
	{Code: "EG", Name: "Egypt", Region: "Africa", CallingCode: "20"},
	{Code: "MA", Name: "Morocco", Region: "Africa", CallingCode: "212", Priority: 1, Default: true},
	{Code: "EH", Name: "Western Sahara", Region: "Africa", CallingCode: "212"},
	{Code: "DZ", Name: "Algeria", Region: "Africa", CallingCode: "213"},
	{Code: "TN", Name: "Tunisia", Region: "Africa", CallingCode: "216"},
	{Code: "LY", Name: "Libya", Region: "Africa", CallingCode: "218"},
	{Code: "SD", Name: "Sudan", Region: "Africa", CallingCode: "249"},
	{Code: "SS", Name: "South Sudan", Region: "Africa", CallingCode: "211"},
	{Code: "ET", Name: "Ethiopia", Region: "Africa", CallingCode: "251"},
	{Code: "ER", Name: "Eritrea", Region: "Africa", CallingCode: "291"},
	{Code: "DJ", Name: "Djibouti", Region: "Africa", CallingCode: "253"},
	{Code: "SO", Name: "Somalia", Region: "Africa", CallingCode: "252"},
	{Code: "KE", Name: "Kenya", Region: "Africa", CallingCode: "254"},
	{Code: "UG", Name: "Uganda", Region: "Africa", CallingCode: "256"},
	{Code: "TZ", Name: "Tanzania", Region: "Africa", CallingCode: "255"},
	{Code: "RW", Name: "Rwanda", Region: "Africa", CallingCode: "250"},
	{Code: "BI", Name: "Burundi", Region: "Africa", CallingCode: "257"},
	{Code: "CD", Name: "DR Congo", Region: "Africa", CallingCode: "243"},
	{Code: "CG", Name: "Republic of the Congo", Region: "Africa", CallingCode: "242"},
	{Code: "GA", Name: "Gabon", Region: "Africa", CallingCode: "241"},
	{Code: "CM", Name: "Cameroon", Region: "Africa", CallingCode: "237"},
	{Code: "CF", Name: "Central African Republic", Region: "Africa", CallingCode: "236"},
	{Code: "TD", Name: "Chad", Region: "Africa", CallingCode: "235"},
	{Code: "NG", Name: "Nigeria", Region: "Africa", CallingCode: "234"},
	{Code: "GH", Name: "Ghana", Region: "Africa", CallingCode: "233"},
	{Code: "CI", Name: "Côte d'Ivoire", Region: "Africa", CallingCode: "225"},
	{Code: "SN", Name: "Senegal", Region: "Africa", CallingCode: "221"},
	{Code: "ML", Name: "Mali", Region: "Africa", CallingCode: "223"},
	{Code: "BF", Name: "Burkina Faso", Region: "Africa", CallingCode: "226"},
	{Code: "NE", Name: "Niger", Region: "Africa", CallingCode: "227"},
	{Code: "GN", Name: "Guinea", Region: "Africa", CallingCode: "224"},
	{Code: "GW", Name: "Guinea-Bissau", Region: "Africa", CallingCode: "245"},
	{Code: "SL", Name: "Sierra Leone", Region: "Africa", CallingCode: "232"},
	{Code: "LR", Name: "Liberia", Region: "Africa", CallingCode: "231"},
	{Code: "TG", Name: "Togo", Region: "Africa", CallingCode: "228"},
	{Code: "BJ", Name: "Benin", Region: "Africa", CallingCode: "229"},
	{Code: "MR", Name: "Mauritania", Region: "Africa", CallingCode: "222"},
	{Code: "GM", Name: "Gambia", Region: "Africa", CallingCode: "220"},
	{Code: "CV", Name: "Cape Verde", Region: "Africa", CallingCode: "238"},
	{Code: "ST", Name: "São Tomé and Príncipe", Region: "Africa", CallingCode: "239"},
	{Code: "GQ", Name: "Equatorial Guinea", Region: "Africa", CallingCode: "240"},
	{Code: "AO", Name: "Angola", Region: "Africa", CallingCode: "244"},
	{Code: "ZM", Name: "Zambia", Region: "Africa", CallingCode: "260"},
	{Code: "ZW", Name: "Zimbabwe", Region: "Africa", CallingCode: "263"},
	{Code: "MW", Name: "Malawi", Region: "Africa", CallingCode: "265"},
	{Code: "MZ", Name: "Mozambique", Region: "Africa", CallingCode: "258"},
	{Code: "MG", Name: "Madagascar", Region: "Africa", CallingCode: "261"},
	{Code: "MU", Name: "Mauritius", Region: "Africa", CallingCode: "230"},
	{Code: "SC", Name: "Seychelles", Region: "Africa", CallingCode: "248"},
	{Code: "KM", Name: "Comoros", Region: "Africa", CallingCode: "269"},
	{Code: "RE", Name: "Réunion", Region: "Africa", CallingCode: "262", Priority: 1, Default: true},
	{Code: "YT", Name: "Mayotte", Region: "Africa", CallingCode: "262"},
	{Code: "ZA", Name: "South Africa", Region: "Africa", CallingCode: "27"},
	{Code: "NA", Name: "Namibia", Region: "Africa", CallingCode: "264"},
	{Code: "BW", Name: "Botswana", Region: "Africa", CallingCode: "267"},
	{Code: "LS", Name: "Lesotho", Region: "Africa", CallingCode: "266"},
	{Code: "SZ", Name: "Eswatini", Region: "Africa", CallingCode: "268"},
	{Code: "SH", Name: "Saint Helena", Region: "Africa", CallingCode: "290"},

	// Oceania
	{Code: "AU", Name: "Australia", Region: "Oceania", CallingCode: "61", Priority: 1, Default: true},
	{Code: "CX", Name: "Christmas Island", Region: "Oceania", CallingCode: "61"},
	{Code: "CC", Name: "Cocos (Keeling) Islands", Region: "Oceania", CallingCode: "61"},
	{Code: "NZ", Name: "New Zealand", Region: "Oceania", CallingCode: "64"},
	{Code: "GU", Name: "Guam", Region: "Oceania", CallingCode: "1671"},
	{Code: "MP", Name: "Northern Mariana Islands", Region: "Oceania", CallingCode: "1670"},
	{Code: "AS", Name: "American Samoa", Region: "Oceania", CallingCode: "1684"},
	{Code: "FJ", Name: "Fiji", Region: "Oceania", CallingCode: "679"},
	{Code: "PG", Name: "Papua New Guinea", Region: "Oceania", CallingCode: "675"},
	{Code: "SB", Name: "Solomon Islands", Region: "Oceania", CallingCode: "677"},
	{Code: "VU", Name: "Vanuatu", Region: "Oceania", CallingCode: "678"},
	{Code: "NC", Name: "New Caledonia", Region: "Oceania", CallingCode: "687"},
	{Code: "PF", Name: "French Polynesia", Region: "Oceania", CallingCode: "689"},
	{Code: "WS", Name: "Samoa", Region: "Oceania", CallingCode: "685"},
	{Code: "TO", Name: "Tonga", Region: "Oceania", CallingCode: "676"},
	{Code: "KI", Name: "Kiribati", Region: "Oceania", CallingCode: "686"},
	{Code: "TV", Name: "Tuvalu", Region: "Oceania", CallingCode: "688"},
	{Code: "NR", Name: "Nauru", Region: "Oceania", CallingCode: "674"},
	{Code: "PW", Name: "Palau", Region: "Oceania", CallingCode: "680"},
	{Code: "FM", Name: "Micronesia", Region: "Oceania", CallingCode: "691"},
	{Code: "MH", Name: "Marshall Islands", Region: "Oceania", CallingCode: "692"},
	{Code: "CK", Name: "Cook Islands", Region: "Oceania", CallingCode: "682"},
	{Code: "NU", Name: "Niue", Region: "Oceania", CallingCode: "683"},
	{Code: "WF", Name: "Wallis and Futuna", Region: "Oceania", CallingCode: "681"},
	{Code: "TK", Name: "Tokelau", Region: "Oceania", CallingCode: "690"},
	{Code: "NF", Name: "Norfolk Island", Region: "Oceania", CallingCode: "672"},
}
