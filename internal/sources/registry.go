package sources

import (
	"github.com/theopenlane/iocscope/internal/ioc"
)

const (
	categoryThreatIntel = "Threat Intel"
	categoryReputation  = "Reputation"
	categoryAnalysis    = "Analysis"
	categoryMalware     = "Malware"
	categoryDomainInfo  = "Domain Info"
	categorySiteReport  = "Site Report"
	categoryDNSIntel    = "DNS Intel"
	categoryBreachIntel = "Breach Intel"
	categoryArchive     = "Archive"
	categorySandbox     = "Sandbox"
	categoryPhishing    = "Phishing"
	categoryRecon       = "Recon"
	categoryLivingOff   = "Living Off Land"
	categoryReference   = "Reference"
	categoryVulns       = "Vulnerabilities"
	categoryIntel       = "Intel"
)

var domainSources = []Descriptor{
	{Name: "VirusTotal", Category: categoryThreatIntel, Template: "https://www.virustotal.com/gui/domain/{value}"},
	{Name: "Talos Intelligence", Category: categoryReputation, Template: "https://talosintelligence.com/reputation_center/lookup?search={value}"},
	{Name: "IBM X-Force", Category: categoryThreatIntel, Template: "https://exchange.xforce.ibmcloud.com/url/{value}"},
	{Name: "AlienVault OTX", Category: categoryThreatIntel, Template: "https://otx.alienvault.com/indicator/url/{value}"},
	{Name: "URLScan.io", Category: categoryAnalysis, Template: "https://urlscan.io/search/#page.domain:{value}"},
	{Name: "Blacklist Checker", Category: categoryReputation, Template: "https://blacklistchecker.com/check?input={value}"},
	{Name: "URLVoid", Category: categoryReputation, Template: "https://urlvoid.com/scan/{value}/"},
	{Name: "URLhaus", Category: categoryMalware, Template: "https://urlhaus.abuse.ch/browse.php?search={value}"},
	{Name: "WHOIS", Category: categoryDomainInfo, Template: "https://www.whois.com/whois/{value}"},
	{Name: "Netcraft", Category: categorySiteReport, Template: "https://sitereport.netcraft.com/?url={value}"},
	{Name: "Web-Check", Category: categoryAnalysis, Template: "https://web-check.xyz/check/{value}"},
	{Name: "SecurityTrails", Category: categoryDNSIntel, Template: "https://securitytrails.com/domain/{value}"},
	{Name: "Hudson Rock", Category: categoryBreachIntel, Template: "https://www.hudsonrock.com/search/domain/{value}"},
	{Name: "Hudson Rock API", Category: categoryBreachIntel, Template: "https://cavalier.hudsonrock.com/api/json/v2/osint-tools/urls-by-domain?domain={value}"},
	{Name: "Wayback Machine", Category: categoryArchive, Template: "https://web.archive.org/web/{value}"},
	{Name: "Wayback Save", Category: categoryArchive, Template: "https://web.archive.org/save/{value}"},
	{Name: "Browserling", Category: categorySandbox, Template: "https://www.browserling.com/browse/win10/chrome138/{value}"},
	{Name: "ANY.RUN", Category: categorySandbox, Template: "https://app.any.run/safe/{value}"},
	{Name: "Phishing Check", Category: categoryPhishing, Template: "https://phishing.finsin.cl/list.php"},
}

var ipSources = []Descriptor{
	{Name: "VirusTotal", Category: categoryThreatIntel, Template: "https://www.virustotal.com/gui/ip-address/{value}"},
	{Name: "AbuseIPDB", Category: categoryReputation, Template: "https://www.abuseipdb.com/check/{value}"},
	{Name: "Talos Intelligence", Category: categoryReputation, Template: "https://talosintelligence.com/reputation_center/lookup?search={value}"},
	{Name: "IBM X-Force", Category: categoryThreatIntel, Template: "https://exchange.xforce.ibmcloud.com/ip/{value}"},
	{Name: "AlienVault OTX", Category: categoryThreatIntel, Template: "https://otx.alienvault.com/indicator/ip/{value}"},
	{Name: "Blacklist Checker", Category: categoryReputation, Template: "https://blacklistchecker.com/check?input={value}"},
	{Name: "Shodan", Category: categoryRecon, Template: "https://www.shodan.io/search?query={value}"},
	{Name: "Censys", Category: categoryRecon, Template: "https://search.censys.io/hosts/{value}"},
	{Name: "GreyNoise", Category: categoryThreatIntel, Template: "https://www.greynoise.io/viz/ip/{value}"},
	{Name: "IP Location", Category: "Geolocation", Template: "https://iplocation.io/ip/{value}"},
}

// urlSources index URLs by digest or by host for services that cannot take the full URL
var urlSources = []Descriptor{
	{Name: "VirusTotal", Category: categoryThreatIntel, Template: "https://www.virustotal.com/gui/url/{value}", Derive: SHA256Hex},
	{Name: "Talos Intelligence", Category: categoryReputation, Template: "https://talosintelligence.com/reputation_center/lookup?search={value}", Encoding: Component},
	{Name: "IBM X-Force", Category: categoryThreatIntel, Template: "https://exchange.xforce.ibmcloud.com/url/{value}", Encoding: Component},
	{Name: "AlienVault OTX", Category: categoryThreatIntel, Template: "https://otx.alienvault.com/indicator/url/{value}"},
	{Name: "URLScan.io", Category: categoryAnalysis, Template: "https://urlscan.io/search/#page.domain:{value}", Derive: RootHost},
	{Name: "Blacklist Checker", Category: categoryReputation, Template: "https://blacklistchecker.com/check?input={value}", Derive: Host},
	{Name: "URLVoid", Category: categoryReputation, Template: "https://urlvoid.com/scan/{value}/", Derive: RootHost},
	{Name: "URLhaus", Category: categoryMalware, Template: "https://urlhaus.abuse.ch/browse.php?search={value}"},
	{Name: "WHOIS", Category: categoryDomainInfo, Template: "https://www.whois.com/whois/{value}", Derive: Host},
	{Name: "Netcraft", Category: categorySiteReport, Template: "https://sitereport.netcraft.com/?url={value}", Encoding: Component},
	{Name: "Web-Check", Category: categoryAnalysis, Template: "https://web-check.xyz/check/{value}", Encoding: Component},
	{Name: "SecurityTrails", Category: categoryDNSIntel, Template: "https://securitytrails.com/domain/{value}", Derive: Host},
	{Name: "Hudson Rock", Category: categoryBreachIntel, Template: "https://www.hudsonrock.com/search/domain/{value}", Derive: RootHost},
	{Name: "Hudson Rock API", Category: categoryBreachIntel, Template: "https://cavalier.hudsonrock.com/api/json/v2/osint-tools/urls-by-domain?domain={value}", Derive: RootHost},
	{Name: "Wayback Machine", Category: categoryArchive, Template: "https://web.archive.org/web/{value}", Encoding: Component},
	{Name: "Wayback Save", Category: categoryArchive, Template: "https://web.archive.org/save/{value}", Encoding: Component},
	{Name: "Browserling", Category: categorySandbox, Template: "https://www.browserling.com/browse/win10/chrome138/{value}"},
	{Name: "ANY.RUN", Category: categorySandbox, Template: "https://app.any.run/safe/{value}"},
	{Name: "Phishing Check", Category: categoryPhishing, Template: "https://phishing.finsin.cl/list.php"},
}

var emailSources = []Descriptor{
	{Name: "Have I Been Pwned", Category: "Breach Check", Template: "https://haveibeenpwned.com/unifiedsearch/{value}"},
	{Name: "Hudson Rock API", Category: categoryBreachIntel, Template: "https://cavalier.hudsonrock.com/api/json/v2/osint-tools/search-by-email?email={value}"},
	{Name: "IntelBase", Category: categoryIntel, Template: "https://intelbase.is/"},
	{Name: "Blacklist Checker", Category: categoryReputation, Template: "https://blacklistchecker.com/check?input={value}"},
}

var hashSources = []Descriptor{
	{Name: "VirusTotal", Category: categoryThreatIntel, Template: "https://www.virustotal.com/gui/file/{value}"},
	{Name: "Hybrid Analysis", Category: categorySandbox, Template: "https://www.hybrid-analysis.com/sample/{value}"},
	{Name: "Joe Sandbox", Category: categorySandbox, Template: "https://www.joesandbox.com/analysis/search?q={value}"},
	{Name: "Triage", Category: categorySandbox, Template: "https://tria.ge/s?q={value}"},
	{Name: "MalShare", Category: categoryMalware, Template: "https://malshare.com/sample.php?action=detail&hash={value}"},
	{Name: "IBM X-Force", Category: categoryThreatIntel, Template: "https://exchange.xforce.ibmcloud.com/malware/{value}"},
	{Name: "Talos Intelligence", Category: categoryReputation, Template: "https://talosintelligence.com/talos_file_reputation?s={value}"},
	{Name: "AlienVault OTX", Category: categoryThreatIntel, Template: "https://otx.alienvault.com/indicator/file/{value}"},
}

// textSources are general search and reference links; every value is query-encoded
var textSources = []Descriptor{
	{Name: "Google Search", Category: "Search", Template: "https://www.google.com/search?q={value}", Encoding: Component},
	{Name: "Google Translate", Category: "Translation", Template: "https://translate.google.com/?sl=auto&tl=en&text={value}&op=translate", Encoding: Component},
	{Name: "LOLBAS", Category: categoryLivingOff, Template: "https://lolbas-project.github.io/#{value}", Encoding: Component},
	{Name: "GTFOBins", Category: categoryLivingOff, Template: "https://gtfobins.github.io/#{value}", Encoding: Component},
	{Name: "MITRE ATT&CK", Category: "Framework", Template: "https://www.google.com/search?q=inurl:attack.mitre.org+{value}", Encoding: Component},
	{Name: "NVD", Category: categoryVulns, Template: "https://nvd.nist.gov/vuln/search#/nvd/home?keyword={value}&resultType=records", Encoding: Component},
	{Name: "CVE.org", Category: categoryVulns, Template: "https://www.cve.org/CVERecord?id={value}", Encoding: Component},
	{Name: "Exploit-DB", Category: "Exploits", Template: "https://www.exploit-db.com/search?q={value}", Encoding: Component},
	{Name: "Windows Security Log", Category: categoryReference, Template: "https://www.ultimatewindowssecurity.com/securitylog/encyclopedia/event.aspx?eventid={value}", Encoding: Component},
	{Name: "Azure Error Codes", Category: categoryReference, Template: "https://login.microsoftonline.com/error"},
	{Name: "Hudson Rock Username", Category: categoryBreachIntel, Template: "https://cavalier.hudsonrock.com/api/json/v2/osint-tools/search-by-username?username={value}", Encoding: Component},
	{Name: "WikiLeaks", Category: categoryIntel, Template: "https://search.wikileaks.org/?query={value}", Encoding: Component},
	{Name: "CyberChef", Category: "Tools", Template: "https://gchq.github.io/CyberChef/"},
	{Name: "MXToolbox Headers", Category: "Email Analysis", Template: "https://mxtoolbox.com/EmailHeaders.aspx"},
	{Name: "No More Ransom", Category: "Ransomware", Template: "https://www.nomoreransom.org/crypto-sheriff.php"},
}

// For returns the ordered lookup sources for an indicator type. Unknown types
// get the text sources. The returned slice is shared and must not be modified.
func For(t ioc.Type) []Descriptor {
	switch t {
	case ioc.TypeDomain:
		return domainSources
	case ioc.TypeIP:
		return ipSources
	case ioc.TypeURL:
		return urlSources
	case ioc.TypeEmail:
		return emailSources
	case ioc.TypeHash:
		return hashSources
	default:
		return textSources
	}
}

// Lookup finds a source by name within the table for t
func Lookup(t ioc.Type, name string) (Descriptor, bool) {
	for _, d := range For(t) {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}
