package thirteenf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoRecordFiling = `<?xml version="1.0" encoding="UTF-8"?>
<ns1:informationTable xmlns:ns1="http://www.sec.gov/edgar/document/thirteenf/informationtable">
  <ns1:infoTable>
    <ns1:nameOfIssuer>ALPHABET INC</ns1:nameOfIssuer>
    <ns1:titleOfClass>CAP STK CL C</ns1:titleOfClass>
    <ns1:cusip>02079K107</ns1:cusip>
    <ns1:value>5000</ns1:value>
    <ns1:shrsOrPrnAmt>
      <ns1:sshPrnamt>100</ns1:sshPrnamt>
      <ns1:sshPrnamtType>SH</ns1:sshPrnamtType>
    </ns1:shrsOrPrnAmt>
    <ns1:investmentDiscretion>SOLE</ns1:investmentDiscretion>
    <ns1:votingAuthority>
      <ns1:Sole>100</ns1:Sole>
      <ns1:Shared>0</ns1:Shared>
      <ns1:None>0</ns1:None>
    </ns1:votingAuthority>
  </ns1:infoTable>
  <ns1:infoTable>
    <ns1:nameOfIssuer>GREEN MTN COFFEE ROASTERS IN</ns1:nameOfIssuer>
    <ns1:titleOfClass>COM</ns1:titleOfClass>
    <ns1:cusip>393122106</ns1:cusip>
    <ns1:value>5000</ns1:value>
    <ns1:shrsOrPrnAmt>
      <ns1:sshPrnamt>50</ns1:sshPrnamt>
      <ns1:sshPrnamtType>SH</ns1:sshPrnamtType>
    </ns1:shrsOrPrnAmt>
    <ns1:putCall>Call</ns1:putCall>
    <ns1:investmentDiscretion>SOLE</ns1:investmentDiscretion>
    <ns1:votingAuthority>
      <ns1:Sole>50</ns1:Sole>
      <ns1:Shared>0</ns1:Shared>
      <ns1:None>0</ns1:None>
    </ns1:votingAuthority>
  </ns1:infoTable>
</ns1:informationTable>
`

const singleRecordFiling = `<informationTable xmlns="http://www.sec.gov/edgar/document/thirteenf/informationtable">
  <infoTable>
    <nameOfIssuer>BRIGHTHOUSE FINL INC</nameOfIssuer>
    <titleOfClass>COM</titleOfClass>
    <cusip>10922N103</cusip>
    <value>120</value>
    <shrsOrPrnAmt><sshPrnamt>3000</sshPrnamt><sshPrnamtType>SH</sshPrnamtType></shrsOrPrnAmt>
    <investmentDiscretion>DFND</investmentDiscretion>
    <votingAuthority><Sole>3000</Sole><Shared>0</Shared><None>0</None></votingAuthority>
  </infoTable>
</informationTable>
`

func TestDecodeFiling(t *testing.T) {
	tree, err := DecodeFiling(strings.NewReader(twoRecordFiling))
	if err != nil {
		t.Fatalf("DecodeFiling() error = %v", err)
	}
	root, ok := tree["informationTable"].(map[string]any)
	if !ok {
		t.Fatalf("DecodeFiling() root = %v, want an informationTable mapping", tree)
	}
	if len(root) != 1 {
		t.Errorf("DecodeFiling() root keys = %v, want only infoTable", root)
	}
	records, ok := root["infoTable"].([]any)
	if !ok || len(records) != 2 {
		t.Fatalf("DecodeFiling() infoTable = %v, want a list of 2 records", root["infoTable"])
	}

	holdings, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got, want := cusips(holdings), []string{"02079K107", "393122106"}; !equalStrings(got, want) {
		t.Errorf("Compile() order = %v, want %v", got, want)
	}
	if got, want := holdings[1].Instrument(), Call; got != want {
		t.Errorf("Instrument() = %q, want %q", got, want)
	}
}

func TestDecodeFiling_SingleRecord(t *testing.T) {
	tree, err := DecodeFiling(strings.NewReader(singleRecordFiling))
	if err != nil {
		t.Fatalf("DecodeFiling() error = %v", err)
	}
	holdings, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("Compile() returned %d holdings, want 1", len(holdings))
	}
	h := holdings[0]
	if h.MarketValue() != 120_000 || h.Shares() != 3000 || h.Discretion() != "DFND" {
		t.Errorf("holding = %+v, want value 120000, 3000 shares, DFND discretion", h)
	}
}

func TestDecodeFiling_TrimsText(t *testing.T) {
	const doc = `<informationTable>
  <infoTable>
    <nameOfIssuer>  TENET HEALTHCARE CORP  </nameOfIssuer>
    <titleOfClass>COM NEW</titleOfClass>
    <cusip id="c1">
      88033G407
    </cusip>
    <value> 1,000 </value>
    <shrsOrPrnAmt><sshPrnamt>10</sshPrnamt></shrsOrPrnAmt>
    <putCall> Put </putCall>
    <investmentDiscretion>SOLE</investmentDiscretion>
    <votingAuthority><Sole>10</Sole></votingAuthority>
  </infoTable>
</informationTable>`
	tree, err := DecodeFiling(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeFiling() error = %v", err)
	}
	holdings, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	h := holdings[0]
	if got, want := h.CUSIP(), "88033G407"; got != want {
		t.Errorf("CUSIP() = %q, want %q", got, want)
	}
	if got, want := h.IssuerName(), "TENET HEALTHCARE CORP"; got != want {
		t.Errorf("IssuerName() = %q, want %q", got, want)
	}
	// inner white space is kept.
	if got, want := h.ShareClass(), "COM NEW"; got != want {
		t.Errorf("ShareClass() = %q, want %q", got, want)
	}
	if h.MarketValue() != 1_000_000 || h.Instrument() != Put {
		t.Errorf("holding = %+v, want a 1000000 put", h)
	}
}

func TestDecodeFiling_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":     "",
		"truncated": "<informationTable><infoTable>",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeFiling(strings.NewReader(doc))
			var dfe *DocumentFormatError
			if !errors.As(err, &dfe) {
				t.Errorf("DecodeFiling() error = %v, want a DocumentFormatError", err)
			}
		})
	}
}

func TestLoadFiling(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "13F.xml")
	if err := os.WriteFile(file, []byte(singleRecordFiling), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFiling(file); err != nil {
		t.Errorf("LoadFiling() error = %v", err)
	}

	bad := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(bad, []byte("<informationTable>"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFiling(bad)
	var dfe *DocumentFormatError
	if !errors.As(err, &dfe) || dfe.Source != bad {
		t.Errorf("LoadFiling() error = %v, want a DocumentFormatError on %q", err, bad)
	}

	if _, err := LoadFiling(filepath.Join(dir, "missing.xml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFiling() error = %v, want %v", err, os.ErrNotExist)
	}
}
