package currency

// isoCurrencies is the embedded ISO-4217 table. Symbols fall back to the
// code itself where no common glyph exists.
var isoCurrencies = []Meta{
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Decimals: 2},
	{Code: "AFN", Name: "Afghan Afghani", Symbol: "؋", Decimals: 2},
	{Code: "ALL", Name: "Albanian Lek", Symbol: "L", Decimals: 2},
	{Code: "AMD", Name: "Armenian Dram", Symbol: "֏", Decimals: 2},
	{Code: "ANG", Name: "Netherlands Antillean Guilder", Symbol: "ƒ", Decimals: 2},
	{Code: "AOA", Name: "Angolan Kwanza", Symbol: "Kz", Decimals: 2},
	{Code: "ARS", Name: "Argentine Peso", Symbol: "$", Decimals: 2},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Decimals: 2},
	{Code: "AWG", Name: "Aruban Florin", Symbol: "ƒ", Decimals: 2},
	{Code: "AZN", Name: "Azerbaijani Manat", Symbol: "₼", Decimals: 2},
	{Code: "BAM", Name: "Bosnia-Herzegovina Convertible Mark", Symbol: "KM", Decimals: 2},
	{Code: "BBD", Name: "Barbadian Dollar", Symbol: "$", Decimals: 2},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳", Decimals: 2},
	{Code: "BGN", Name: "Bulgarian Lev", Symbol: "лв", Decimals: 2},
	{Code: "BHD", Name: "Bahraini Dinar", Symbol: ".د.ب", Decimals: 3},
	{Code: "BIF", Name: "Burundian Franc", Symbol: "FBu", Decimals: 0},
	{Code: "BMD", Name: "Bermudian Dollar", Symbol: "$", Decimals: 2},
	{Code: "BND", Name: "Brunei Dollar", Symbol: "$", Decimals: 2},
	{Code: "BOB", Name: "Bolivian Boliviano", Symbol: "Bs.", Decimals: 2},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Decimals: 2},
	{Code: "BSD", Name: "Bahamian Dollar", Symbol: "$", Decimals: 2},
	{Code: "BTN", Name: "Bhutanese Ngultrum", Symbol: "Nu.", Decimals: 2},
	{Code: "BWP", Name: "Botswana Pula", Symbol: "P", Decimals: 2},
	{Code: "BYN", Name: "Belarusian Ruble", Symbol: "Br", Decimals: 2},
	{Code: "BZD", Name: "Belize Dollar", Symbol: "BZ$", Decimals: 2},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2},
	{Code: "CDF", Name: "Congolese Franc", Symbol: "FC", Decimals: 2},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Decimals: 2},
	{Code: "CLP", Name: "Chilean Peso", Symbol: "$", Decimals: 0},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Decimals: 2},
	{Code: "COP", Name: "Colombian Peso", Symbol: "$", Decimals: 2},
	{Code: "CRC", Name: "Costa Rican Colon", Symbol: "₡", Decimals: 2},
	{Code: "CUP", Name: "Cuban Peso", Symbol: "$", Decimals: 2},
	{Code: "CVE", Name: "Cape Verdean Escudo", Symbol: "$", Decimals: 2},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", Decimals: 2},
	{Code: "DJF", Name: "Djiboutian Franc", Symbol: "Fdj", Decimals: 0},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr", Decimals: 2},
	{Code: "DOP", Name: "Dominican Peso", Symbol: "RD$", Decimals: 2},
	{Code: "DZD", Name: "Algerian Dinar", Symbol: "دج", Decimals: 2},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "£", Decimals: 2},
	{Code: "ERN", Name: "Eritrean Nakfa", Symbol: "Nfk", Decimals: 2},
	{Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br", Decimals: 2},
	{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2},
	{Code: "FJD", Name: "Fijian Dollar", Symbol: "FJ$", Decimals: 2},
	{Code: "FKP", Name: "Falkland Islands Pound", Symbol: "£", Decimals: 2},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: 2},
	{Code: "GEL", Name: "Georgian Lari", Symbol: "₾", Decimals: 2},
	{Code: "GHS", Name: "Ghanaian Cedi", Symbol: "₵", Decimals: 2},
	{Code: "GIP", Name: "Gibraltar Pound", Symbol: "£", Decimals: 2},
	{Code: "GMD", Name: "Gambian Dalasi", Symbol: "D", Decimals: 2},
	{Code: "GNF", Name: "Guinean Franc", Symbol: "FG", Decimals: 0},
	{Code: "GTQ", Name: "Guatemalan Quetzal", Symbol: "Q", Decimals: 2},
	{Code: "GYD", Name: "Guyanese Dollar", Symbol: "$", Decimals: 2},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Decimals: 2},
	{Code: "HNL", Name: "Honduran Lempira", Symbol: "L", Decimals: 2},
	{Code: "HRK", Name: "Croatian Kuna", Symbol: "kn", Decimals: 2},
	{Code: "HTG", Name: "Haitian Gourde", Symbol: "G", Decimals: 2},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", Decimals: 2},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Decimals: 2},
	{Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪", Decimals: 2},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Decimals: 2},
	{Code: "IQD", Name: "Iraqi Dinar", Symbol: "ع.د", Decimals: 3},
	{Code: "IRR", Name: "Iranian Rial", Symbol: "﷼", Decimals: 2},
	{Code: "ISK", Name: "Icelandic Krona", Symbol: "kr", Decimals: 0},
	{Code: "JMD", Name: "Jamaican Dollar", Symbol: "J$", Decimals: 2},
	{Code: "JOD", Name: "Jordanian Dinar", Symbol: "JD", Decimals: 3},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh", Decimals: 2},
	{Code: "KGS", Name: "Kyrgyzstani Som", Symbol: "лв", Decimals: 2},
	{Code: "KHR", Name: "Cambodian Riel", Symbol: "៛", Decimals: 2},
	{Code: "KMF", Name: "Comorian Franc", Symbol: "CF", Decimals: 0},
	{Code: "KPW", Name: "North Korean Won", Symbol: "₩", Decimals: 2},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Decimals: 0},
	{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك", Decimals: 3},
	{Code: "KYD", Name: "Cayman Islands Dollar", Symbol: "$", Decimals: 2},
	{Code: "KZT", Name: "Kazakhstani Tenge", Symbol: "₸", Decimals: 2},
	{Code: "LAK", Name: "Lao Kip", Symbol: "₭", Decimals: 2},
	{Code: "LBP", Name: "Lebanese Pound", Symbol: "ل.ل", Decimals: 2},
	{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "₨", Decimals: 2},
	{Code: "LRD", Name: "Liberian Dollar", Symbol: "$", Decimals: 2},
	{Code: "LSL", Name: "Lesotho Loti", Symbol: "M", Decimals: 2},
	{Code: "LYD", Name: "Libyan Dinar", Symbol: "ل.د", Decimals: 3},
	{Code: "MAD", Name: "Moroccan Dirham", Symbol: "د.م.", Decimals: 2},
	{Code: "MDL", Name: "Moldovan Leu", Symbol: "L", Decimals: 2},
	{Code: "MGA", Name: "Malagasy Ariary", Symbol: "Ar", Decimals: 2},
	{Code: "MKD", Name: "Macedonian Denar", Symbol: "ден", Decimals: 2},
	{Code: "MMK", Name: "Myanmar Kyat", Symbol: "K", Decimals: 2},
	{Code: "MNT", Name: "Mongolian Tugrik", Symbol: "₮", Decimals: 2},
	{Code: "MOP", Name: "Macanese Pataca", Symbol: "MOP$", Decimals: 2},
	{Code: "MRU", Name: "Mauritanian Ouguiya", Symbol: "UM", Decimals: 2},
	{Code: "MUR", Name: "Mauritian Rupee", Symbol: "₨", Decimals: 2},
	{Code: "MVR", Name: "Maldivian Rufiyaa", Symbol: "Rf", Decimals: 2},
	{Code: "MWK", Name: "Malawian Kwacha", Symbol: "MK", Decimals: 2},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", Decimals: 2},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Decimals: 2},
	{Code: "MZN", Name: "Mozambican Metical", Symbol: "MT", Decimals: 2},
	{Code: "NAD", Name: "Namibian Dollar", Symbol: "$", Decimals: 2},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Decimals: 2},
	{Code: "NIO", Name: "Nicaraguan Cordoba", Symbol: "C$", Decimals: 2},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Decimals: 2},
	{Code: "NPR", Name: "Nepalese Rupee", Symbol: "₨", Decimals: 2},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Decimals: 2},
	{Code: "OMR", Name: "Omani Rial", Symbol: "﷼", Decimals: 3},
	{Code: "PAB", Name: "Panamanian Balboa", Symbol: "B/.", Decimals: 2},
	{Code: "PEN", Name: "Peruvian Sol", Symbol: "S/.", Decimals: 2},
	{Code: "PGK", Name: "Papua New Guinean Kina", Symbol: "K", Decimals: 2},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Decimals: 2},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨", Decimals: 2},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł", Decimals: 2},
	{Code: "PYG", Name: "Paraguayan Guarani", Symbol: "Gs", Decimals: 0},
	{Code: "QAR", Name: "Qatari Riyal", Symbol: "﷼", Decimals: 2},
	{Code: "RON", Name: "Romanian Leu", Symbol: "lei", Decimals: 2},
	{Code: "RSD", Name: "Serbian Dinar", Symbol: "Дин.", Decimals: 2},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", Decimals: 2},
	{Code: "RWF", Name: "Rwandan Franc", Symbol: "FRw", Decimals: 0},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼", Decimals: 2},
	{Code: "SBD", Name: "Solomon Islands Dollar", Symbol: "$", Decimals: 2},
	{Code: "SCR", Name: "Seychellois Rupee", Symbol: "₨", Decimals: 2},
	{Code: "SDG", Name: "Sudanese Pound", Symbol: "ج.س.", Decimals: 2},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Decimals: 2},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Decimals: 2},
	{Code: "SHP", Name: "Saint Helena Pound", Symbol: "£", Decimals: 2},
	{Code: "SLE", Name: "Sierra Leonean Leone", Symbol: "Le", Decimals: 2},
	{Code: "SOS", Name: "Somali Shilling", Symbol: "S", Decimals: 2},
	{Code: "SRD", Name: "Surinamese Dollar", Symbol: "$", Decimals: 2},
	{Code: "SSP", Name: "South Sudanese Pound", Symbol: "£", Decimals: 2},
	{Code: "STN", Name: "Sao Tome and Principe Dobra", Symbol: "Db", Decimals: 2},
	{Code: "SYP", Name: "Syrian Pound", Symbol: "£", Decimals: 2},
	{Code: "SZL", Name: "Swazi Lilangeni", Symbol: "E", Decimals: 2},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿", Decimals: 2},
	{Code: "TJS", Name: "Tajikistani Somoni", Symbol: "SM", Decimals: 2},
	{Code: "TMT", Name: "Turkmenistani Manat", Symbol: "T", Decimals: 2},
	{Code: "TND", Name: "Tunisian Dinar", Symbol: "د.ت", Decimals: 3},
	{Code: "TOP", Name: "Tongan Pa'anga", Symbol: "T$", Decimals: 2},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Decimals: 2},
	{Code: "TTD", Name: "Trinidad and Tobago Dollar", Symbol: "TT$", Decimals: 2},
	{Code: "TWD", Name: "New Taiwan Dollar", Symbol: "NT$", Decimals: 2},
	{Code: "TZS", Name: "Tanzanian Shilling", Symbol: "TSh", Decimals: 2},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "₴", Decimals: 2},
	{Code: "UGX", Name: "Ugandan Shilling", Symbol: "USh", Decimals: 0},
	{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2},
	{Code: "UYU", Name: "Uruguayan Peso", Symbol: "$U", Decimals: 2},
	{Code: "UZS", Name: "Uzbekistani Som", Symbol: "лв", Decimals: 2},
	{Code: "VES", Name: "Venezuelan Bolivar", Symbol: "Bs.", Decimals: 2},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", Decimals: 0},
	{Code: "VUV", Name: "Vanuatu Vatu", Symbol: "VT", Decimals: 0},
	{Code: "WST", Name: "Samoan Tala", Symbol: "WS$", Decimals: 2},
	{Code: "XAF", Name: "Central African CFA Franc", Symbol: "FCFA", Decimals: 0},
	{Code: "XCD", Name: "East Caribbean Dollar", Symbol: "$", Decimals: 2},
	{Code: "XOF", Name: "West African CFA Franc", Symbol: "CFA", Decimals: 0},
	{Code: "XPF", Name: "CFP Franc", Symbol: "₣", Decimals: 0},
	{Code: "YER", Name: "Yemeni Rial", Symbol: "﷼", Decimals: 2},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Decimals: 2},
	{Code: "ZMW", Name: "Zambian Kwacha", Symbol: "ZK", Decimals: 2},
	{Code: "ZWL", Name: "Zimbabwean Dollar", Symbol: "$", Decimals: 2},
}

// extendedCodes are non-ISO codes the rate providers quote anyway:
// cryptocurrencies, island pounds, and a few historical codes that
// FloatRates and CurrConv still serve.
var extendedCodes = []string{
	// crypto
	"BTC", "BCH", "BNB", "DASH", "DOGE", "EOS", "ETH", "LTC",
	"XLM", "XMR", "XRP", "ZEC",
	// regional pounds and island currencies without ISO entries
	"GGP", "IMP", "JEP", "KID", "TVD",
	// historical codes still present in provider feeds
	"BYR", "CUC", "EEK", "LTL", "LVL", "MRO", "SKK", "STD",
	"VEF", "ZMK", "ZWD",
}
