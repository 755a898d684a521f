package config

// DefaultStockNames maps TWSE stock codes to display names for the
// watchlist the TW pipeline tracks. Configs may extend or replace it
// via stock_names; unknown codes are simply never annotated.
func DefaultStockNames() map[string]string {
	return map[string]string{
		"0050":   "元大台灣50",
		"00631L": "元大台灣50正2",
		"2330":   "台積電",
		"2454":   "聯發科",
		"2317":   "鴻海",
		"2308":   "台達電",
		"2344":   "華邦電",
		"2327":   "國巨",
		"2449":   "京元電子",
		"2357":   "華碩",
		"3017":   "奇鋐",
		"2408":   "南亞科",
		"2337":   "旺宏",
		"8299":   "群聯",
		"6669":   "緯穎",
		"3491":   "昇達科",
		"6285":   "啟碁",
		"5388":   "中磊",
		"8086":   "宏捷科",
		"3105":   "穩懋",
		"4979":   "華星光",
		"3163":   "波若威",
		"3363":   "上詮",
		"3234":   "光環",
		"3081":   "聯亞",
		"6442":   "光聖",
		"3450":   "聯鈞",
	}
}
