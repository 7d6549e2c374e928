// Package universe defines the fixed B3 ticker universe the pipeline
// iterates. The list is ordered; the pipeline processes it sequentially
// and tie-breaks equal composite scores by this order.
package universe

// tickers is the B3 universe in EODHD symbol notation (.SA suffix).
var tickers = []string{
	"PETR4.SA", "VALE3.SA", "BBAS3.SA", "MGLU3.SA", "B3SA3.SA", "COGN3.SA", "ABEV3.SA", "BBDC4.SA", "ITSA4.SA", "AZUL4.SA",
	"VAMO3.SA", "ITUB4.SA", "RAIZ4.SA", "CSAN3.SA", "CVCB3.SA", "RAIL3.SA", "PETR3.SA", "PRIO3.SA", "BEEF3.SA", "CSNA3.SA",
	"GGBR4.SA", "LREN3.SA", "RENT3.SA", "SUZB3.SA", "WEGE3.SA", "JBSS3.SA", "BRFS3.SA", "ELET3.SA", "ELET6.SA", "BRKM5.SA",
	"BRAP4.SA", "HAPV3.SA", "NTCO3.SA", "ASAI3.SA", "ENEV3.SA", "EGIE3.SA", "CPLE6.SA", "CMIG4.SA", "TAEE11.SA", "TRPL4.SA",
	"ENBR3.SA", "CPFE3.SA", "EMBR3.SA", "TIMS3.SA", "VIVT3.SA", "BRML3.SA", "MULT3.SA", "IGTI11.SA", "ALPA4.SA", "CRFB3.SA",
	"PCAR3.SA", "MRVE3.SA", "CYRE3.SA", "EZTC3.SA", "TOTS3.SA", "QUAL3.SA", "YDUQ3.SA", "SEER3.SA", "SOMA3.SA", "AMER3.SA",
	"CASH3.SA", "LWSA3.SA", "BIDI11.SA", "BPAC11.SA", "PSSA3.SA", "BBSE3.SA", "SULA11.SA", "HYPE3.SA", "RADL3.SA", "FLRY3.SA",
	"GNDI3.SA", "CSMG3.SA", "SBSP3.SA", "SAPR11.SA", "SANB11.SA", "BRDT3.SA", "UGPA3.SA", "PETZ3.SA", "ARZZ3.SA", "MOVI3.SA",
	"VIIA3.SA", "CAML3.SA", "ALSO3.SA", "MRFG3.SA", "SLCE3.SA", "JHSF3.SA", "BRSR6.SA", "ENAT3.SA", "TRIS3.SA", "LOGG3.SA",
	"BMGB4.SA", "MEAL3.SA", "CEAB3.SA", "PNVL3.SA", "ODPV3.SA", "LIGT3.SA", "AESB3.SA", "NEOE3.SA", "CPLE3.SA", "CMIN3.SA",
	"RECV3.SA", "RRRP3.SA", "AERI3.SA", "BRPR3.SA", "ALUP11.SA", "BRAP3.SA", "BRSR3.SA", "BRSR5.SA", "CEGR3.SA", "CESP3.SA",
	"CESP5.SA", "CESP6.SA", "CGAS3.SA", "CGAS5.SA", "CLSC3.SA", "CLSC4.SA", "CMIG3.SA", "CRIV3.SA", "CRIV4.SA", "CSAB3.SA",
	"CSAB4.SA", "CTKA3.SA", "CTKA4.SA", "CTNM3.SA", "CTNM4.SA", "CTSA3.SA", "CTSA4.SA", "CTSA8.SA", "CURY3.SA", "CXSE3.SA",
	"DIRR3.SA", "DMMO3.SA", "DOHL3.SA", "DOHL4.SA", "EALT3.SA", "EALT4.SA", "ECOR3.SA", "EMAE4.SA", "ENGI11.SA", "ENGI3.SA",
	"ENGI4.SA", "EQPA3.SA", "EQPA7.SA", "EQTL3.SA", "ETER3.SA", "EUCA3.SA", "EUCA4.SA", "EVEN3.SA", "FESA3.SA", "FESA4.SA",
	"FRAS3.SA", "GGBR3.SA", "GOAU3.SA", "GOAU4.SA", "GOLL4.SA", "GRND3.SA", "GSHP3.SA", "GUAR3.SA", "HBOR3.SA", "HBSA3.SA",
	"HGTX3.SA", "IRBR3.SA", "ITSA3.SA", "ITUB3.SA", "KLBN11.SA", "KLBN3.SA", "KLBN4.SA", "LINX3.SA", "LIPR3.SA", "LUPA3.SA",
	"LUXM4.SA", "MDIA3.SA", "MELK3.SA", "MILS3.SA", "MLAS3.SA", "MMXM3.SA", "OFSA3.SA", "OIBR3.SA", "OIBR4.SA", "OMGE3.SA",
	"PARD3.SA", "PFRM3.SA", "PINE4.SA", "PLPL3.SA", "PMAM3.SA", "POSI3.SA", "PTBL3.SA", "RANI3.SA", "RAPT3.SA", "RAPT4.SA",
	"RLOG3.SA", "ROMI3.SA", "RSID3.SA", "SAPR3.SA", "SAPR4.SA", "SGPS3.SA", "SLED3.SA", "SLED4.SA", "SMTO3.SA", "TAEE3.SA",
	"TAEE4.SA", "TASA3.SA", "TASA4.SA", "TCSA3.SA", "TGMA3.SA", "TRPL3.SA", "TUPY3.SA", "UNIP3.SA", "UNIP5.SA", "UNIP6.SA",
	"USIM3.SA", "USIM5.SA", "USIM6.SA", "VBBR3.SA", "VLID3.SA", "VULC3.SA", "WEST3.SA", "WHRL3.SA", "WHRL4.SA",
}

// Tickers returns a copy of the universe to keep the canonical order
// immutable for callers.
func Tickers() []string {
	out := make([]string, len(tickers))
	copy(out, tickers)
	return out
}

// Size returns the number of tickers in the universe
func Size() int {
	return len(tickers)
}
